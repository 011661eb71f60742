package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "bare",
			err:  NewDomainError(CodeTokenInvalid, "token mismatch"),
			want: "[1010] token mismatch",
		},
		{
			name: "with details",
			err:  NewDomainError(CodeUIDInvalid, "unknown uid").WithDetails("uid=42"),
			want: "[1011] unknown uid: uid=42",
		},
		{
			name: "cause not echoed",
			err:  NewDomainError(CodeDependency, "cache unavailable").WithCause(errors.New("dial refused")),
			want: "[1014] cache unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainErrorIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrTokenInvalid.WithDetails("uid=7"))
	if !errors.Is(wrapped, ErrTokenInvalid) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, ErrUIDInvalid) {
		t.Fatal("did not expect a match against a different code")
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrDependency.WithCause(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: CodeSuccess},
		{name: "domain", err: ErrCreateChatFailed, want: CodeCreateChatFailed},
		{name: "wrapped domain", err: fmt.Errorf("op: %w", ErrLockTimeout), want: CodeLockTimeout},
		{name: "foreign", err: errors.New("boom"), want: CodeDependency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindLogin.String(); got != "login" {
		t.Errorf("KindLogin.String() = %q, want %q", got, "login")
	}
	if got := Kind(9999).String(); got != "kind(9999)" {
		t.Errorf("unknown kind String() = %q, want %q", got, "kind(9999)")
	}
}

func TestKindResponsePairs(t *testing.T) {
	pairs := []struct {
		req, resp Kind
	}{
		{KindLogin, KindLoginResp},
		{KindSearchUser, KindSearchUserResp},
		{KindAddFriend, KindAddFriendResp},
		{KindAuthFriend, KindAuthFriendResp},
		{KindTextChat, KindTextChatResp},
		{KindLoadChatThreads, KindLoadChatThreadsResp},
		{KindCreatePrivateChat, KindCreatePrivateChatResp},
	}
	for _, p := range pairs {
		if p.resp != p.req+1 {
			t.Errorf("response kind for %s is %d, want %d", p.req, p.resp, p.req+1)
		}
	}
}

func TestBaseInfoClone(t *testing.T) {
	orig := &BaseInfo{UID: 1, Name: "alice", Nick: "al"}
	clone := orig.Clone()
	clone.Nick = "changed"
	if orig.Nick != "al" {
		t.Fatal("Clone must not alias the original")
	}
}

func TestChatThreadOther(t *testing.T) {
	th := &ChatThread{ThreadID: 5, Type: ThreadTypePrivate, User1ID: 10, User2ID: 20}
	if got := th.Other(10); got != 20 {
		t.Errorf("Other(10) = %d, want 20", got)
	}
	if got := th.Other(20); got != 10 {
		t.Errorf("Other(20) = %d, want 10", got)
	}
	if got := th.Other(99); got != 0 {
		t.Errorf("Other(99) = %d, want 0", got)
	}
}
