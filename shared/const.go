package shared

const (
	AccountID = "account_id"

	// YouTubeLinkPattern validates requester-supplied video links. Applied
	// case-insensitive and multi-line, same shape the bot enforces client
	// side.
	YouTubeLinkPattern = `(?im)^((?:https?:)?//)?((?:www|m)\.)?((?:youtube(-nocookie)?\.com|youtu\.be))(/(?:[\w\-]+\?v=|embed/|v/)?)([\w\-]+)(\S+)?$`
)
