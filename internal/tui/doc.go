// Package tui is the interactive browser for discovered mDNS services.
//
// The browser follows a Model-View-Controller split:
//
//   - model: browser state, the ListView/DetailView state machine and its
//     key dispatch, key bindings and the messages exchanged with Bubble Tea.
//   - view: turns a model into terminal lines. The detail view only ever
//     reads its snapshot, never the live registry.
//   - controller: routes Bubble Tea messages, handles the keys that sit
//     outside the state machine (quit, help, copy) and builds the program.
//
// The screen is redrawn on every tick (100ms by default) so services appended
// by the discovery feed show up without any key being pressed. The registry
// is the only state shared with the feed.
package tui
