package domain

import "fmt"

// Kind identifies a wire message. Requests and their responses occupy
// adjacent ids; Notify* kinds are pushed to a session without a request.
type Kind uint16

const (
	KindLogin                 Kind = 1005
	KindLoginResp             Kind = 1006
	KindSearchUser            Kind = 1007
	KindSearchUserResp        Kind = 1008
	KindAddFriend             Kind = 1009
	KindAddFriendResp         Kind = 1010
	KindNotifyAddFriend       Kind = 1011
	KindAuthFriend            Kind = 1013
	KindAuthFriendResp        Kind = 1014
	KindNotifyAuthFriend      Kind = 1015
	KindTextChat              Kind = 1017
	KindTextChatResp          Kind = 1018
	KindNotifyTextChat        Kind = 1019
	KindNotifyOffline         Kind = 1021
	KindHeartBeat             Kind = 1023
	KindHeartBeatResp         Kind = 1024
	KindLoadChatThreads       Kind = 1025
	KindLoadChatThreadsResp   Kind = 1026
	KindCreatePrivateChat     Kind = 1027
	KindCreatePrivateChatResp Kind = 1028
)

var kindNames = map[Kind]string{
	KindLogin:                 "login",
	KindLoginResp:             "login_resp",
	KindSearchUser:            "search_user",
	KindSearchUserResp:        "search_user_resp",
	KindAddFriend:             "add_friend",
	KindAddFriendResp:         "add_friend_resp",
	KindNotifyAddFriend:       "notify_add_friend",
	KindAuthFriend:            "auth_friend",
	KindAuthFriendResp:        "auth_friend_resp",
	KindNotifyAuthFriend:      "notify_auth_friend",
	KindTextChat:              "text_chat",
	KindTextChatResp:          "text_chat_resp",
	KindNotifyTextChat:        "notify_text_chat",
	KindNotifyOffline:         "notify_offline",
	KindHeartBeat:             "heart_beat",
	KindHeartBeatResp:         "heart_beat_resp",
	KindLoadChatThreads:       "load_chat_threads",
	KindLoadChatThreadsResp:   "load_chat_threads_resp",
	KindCreatePrivateChat:     "create_private_chat",
	KindCreatePrivateChatResp: "create_private_chat_resp",
}

// String returns a stable lowercase name, used in logs and metric labels.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint16(k))
}
