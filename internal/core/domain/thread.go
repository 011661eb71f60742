package domain

// Chat thread types.
const (
	ThreadTypePrivate = "private"
	ThreadTypeGroup   = "group"
)

// ChatThread is one conversation a user participates in. For private
// threads User1ID/User2ID carry both member uids; group threads leave
// them zero and members are resolved separately.
type ChatThread struct {
	ThreadID int64  `json:"thread_id"`
	Type     string `json:"type"`
	User1ID  int64  `json:"user1_id"`
	User2ID  int64  `json:"user2_id"`
}

// Other returns the peer uid of a private thread relative to uid.
// Zero for group threads.
func (t *ChatThread) Other(uid int64) int64 {
	switch uid {
	case t.User1ID:
		return t.User2ID
	case t.User2ID:
		return t.User1ID
	default:
		return 0
	}
}

// TextMessage is a single chat message in a relay batch. The client
// assigns the msgid so acknowledgements can be correlated.
type TextMessage struct {
	MsgID   string `json:"msgid"`
	Content string `json:"content"`
}
