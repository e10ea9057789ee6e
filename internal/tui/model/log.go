package model

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
}

// LastActivity returns the most recent activity log line, or "".
func (m *Model) LastActivity() string {
	if len(m.ActivityLog) == 0 {
		return ""
	}
	return m.ActivityLog[len(m.ActivityLog)-1]
}
