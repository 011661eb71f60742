// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: peer.proto

package peerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type KickUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uid           int64                  `protobuf:"varint,1,opt,name=uid,proto3" json:"uid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KickUserRequest) Reset() {
	*x = KickUserRequest{}
	mi := &file_peer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KickUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KickUserRequest) ProtoMessage() {}

func (x *KickUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KickUserRequest.ProtoReflect.Descriptor instead.
func (*KickUserRequest) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{0}
}

func (x *KickUserRequest) GetUid() int64 {
	if x != nil {
		return x.Uid
	}
	return 0
}

type KickUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kicked        bool                   `protobuf:"varint,1,opt,name=kicked,proto3" json:"kicked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KickUserResponse) Reset() {
	*x = KickUserResponse{}
	mi := &file_peer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KickUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KickUserResponse) ProtoMessage() {}

func (x *KickUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KickUserResponse.ProtoReflect.Descriptor instead.
func (*KickUserResponse) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{1}
}

func (x *KickUserResponse) GetKicked() bool {
	if x != nil {
		return x.Kicked
	}
	return false
}

type AddFriendNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplyUid      int64                  `protobuf:"varint,1,opt,name=apply_uid,json=applyUid,proto3" json:"apply_uid,omitempty"`
	ToUid         int64                  `protobuf:"varint,2,opt,name=to_uid,json=toUid,proto3" json:"to_uid,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Desc          string                 `protobuf:"bytes,4,opt,name=desc,proto3" json:"desc,omitempty"`
	Icon          string                 `protobuf:"bytes,5,opt,name=icon,proto3" json:"icon,omitempty"`
	Nick          string                 `protobuf:"bytes,6,opt,name=nick,proto3" json:"nick,omitempty"`
	Sex           int32                  `protobuf:"varint,7,opt,name=sex,proto3" json:"sex,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddFriendNotice) Reset() {
	*x = AddFriendNotice{}
	mi := &file_peer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddFriendNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddFriendNotice) ProtoMessage() {}

func (x *AddFriendNotice) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddFriendNotice.ProtoReflect.Descriptor instead.
func (*AddFriendNotice) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{2}
}

func (x *AddFriendNotice) GetApplyUid() int64 {
	if x != nil {
		return x.ApplyUid
	}
	return 0
}

func (x *AddFriendNotice) GetToUid() int64 {
	if x != nil {
		return x.ToUid
	}
	return 0
}

func (x *AddFriendNotice) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddFriendNotice) GetDesc() string {
	if x != nil {
		return x.Desc
	}
	return ""
}

func (x *AddFriendNotice) GetIcon() string {
	if x != nil {
		return x.Icon
	}
	return ""
}

func (x *AddFriendNotice) GetNick() string {
	if x != nil {
		return x.Nick
	}
	return ""
}

func (x *AddFriendNotice) GetSex() int32 {
	if x != nil {
		return x.Sex
	}
	return 0
}

type AuthFriendNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromUid       int64                  `protobuf:"varint,1,opt,name=from_uid,json=fromUid,proto3" json:"from_uid,omitempty"`
	ToUid         int64                  `protobuf:"varint,2,opt,name=to_uid,json=toUid,proto3" json:"to_uid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuthFriendNotice) Reset() {
	*x = AuthFriendNotice{}
	mi := &file_peer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthFriendNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthFriendNotice) ProtoMessage() {}

func (x *AuthFriendNotice) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthFriendNotice.ProtoReflect.Descriptor instead.
func (*AuthFriendNotice) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{3}
}

func (x *AuthFriendNotice) GetFromUid() int64 {
	if x != nil {
		return x.FromUid
	}
	return 0
}

func (x *AuthFriendNotice) GetToUid() int64 {
	if x != nil {
		return x.ToUid
	}
	return 0
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Msgid         string                 `protobuf:"bytes,1,opt,name=msgid,proto3" json:"msgid,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_peer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{4}
}

func (x *ChatMessage) GetMsgid() string {
	if x != nil {
		return x.Msgid
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type TextChatNotice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromUid       int64                  `protobuf:"varint,1,opt,name=from_uid,json=fromUid,proto3" json:"from_uid,omitempty"`
	ToUid         int64                  `protobuf:"varint,2,opt,name=to_uid,json=toUid,proto3" json:"to_uid,omitempty"`
	Messages      []*ChatMessage         `protobuf:"bytes,3,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextChatNotice) Reset() {
	*x = TextChatNotice{}
	mi := &file_peer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextChatNotice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextChatNotice) ProtoMessage() {}

func (x *TextChatNotice) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextChatNotice.ProtoReflect.Descriptor instead.
func (*TextChatNotice) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{5}
}

func (x *TextChatNotice) GetFromUid() int64 {
	if x != nil {
		return x.FromUid
	}
	return 0
}

func (x *TextChatNotice) GetToUid() int64 {
	if x != nil {
		return x.ToUid
	}
	return 0
}

func (x *TextChatNotice) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

type NotifyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Delivered     bool                   `protobuf:"varint,1,opt,name=delivered,proto3" json:"delivered,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NotifyResponse) Reset() {
	*x = NotifyResponse{}
	mi := &file_peer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NotifyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NotifyResponse) ProtoMessage() {}

func (x *NotifyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_peer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NotifyResponse.ProtoReflect.Descriptor instead.
func (*NotifyResponse) Descriptor() ([]byte, []int) {
	return file_peer_proto_rawDescGZIP(), []int{6}
}

func (x *NotifyResponse) GetDelivered() bool {
	if x != nil {
		return x.Delivered
	}
	return false
}

var File_peer_proto protoreflect.FileDescriptor

const file_peer_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"peer.proto\x12\vchatmesh.v1\"#\n" +
	"\x0fKickUserRequest\x12\x10\n" +
	"\x03uid\x18\x01 \x01(\x03R\x03uid\"*\n" +
	"\x10KickUserResponse\x12\x16\n" +
	"\x06kicked\x18\x01 \x01(\bR\x06kicked\"\xa7\x01\n" +
	"\x0fAddFriendNotice\x12\x1b\n" +
	"\tapply_uid\x18\x01 \x01(\x03R\bapplyUid\x12\x15\n" +
	"\x06to_uid\x18\x02 \x01(\x03R\x05toUid\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04desc\x18\x04 \x01(\tR\x04desc\x12\x12\n" +
	"\x04icon\x18\x05 \x01(\tR\x04icon\x12\x12\n" +
	"\x04nick\x18\x06 \x01(\tR\x04nick\x12\x10\n" +
	"\x03sex\x18\a \x01(\x05R\x03sex\"D\n" +
	"\x10AuthFriendNotice\x12\x19\n" +
	"\bfrom_uid\x18\x01 \x01(\x03R\afromUid\x12\x15\n" +
	"\x06to_uid\x18\x02 \x01(\x03R\x05toUid\"=\n" +
	"\vChatMessage\x12\x14\n" +
	"\x05msgid\x18\x01 \x01(\tR\x05msgid\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"x\n" +
	"\x0eTextChatNotice\x12\x19\n" +
	"\bfrom_uid\x18\x01 \x01(\x03R\afromUid\x12\x15\n" +
	"\x06to_uid\x18\x02 \x01(\x03R\x05toUid\x124\n" +
	"\bmessages\x18\x03 \x03(\v2\x18.chatmesh.v1.ChatMessageR\bmessages\".\n" +
	"\x0eNotifyResponse\x12\x1c\n" +
	"\tdelivered\x18\x01 \x01(\bR\tdelivered2\xc8\x02\n" +
	"\vPeerService\x12I\n" +
	"\bKickUser\x12\x1c.chatmesh.v1.KickUserRequest\x1a\x1d.chatmesh.v1.KickUserResponse\"\x00\x12N\n" +
	"\x0fNotifyAddFriend\x12\x1c.chatmesh.v1.AddFriendNotice\x1a\x1b.chatmesh.v1.NotifyResponse\"\x00\x12P\n" +
	"\x10NotifyAuthFriend\x12\x1d.chatmesh.v1.AuthFriendNotice\x1a\x1b.chatmesh.v1.NotifyResponse\"\x00\x12L\n" +
	"\x0eNotifyTextChat\x12\x1b.chatmesh.v1.TextChatNotice\x1a\x1b.chatmesh.v1.NotifyResponse\"\x00B5Z3github.com/chatmesh/chatmesh-go/api/proto/v1;peerv1b\x06proto3"

var (
	file_peer_proto_rawDescOnce sync.Once
	file_peer_proto_rawDescData []byte
)

func file_peer_proto_rawDescGZIP() []byte {
	file_peer_proto_rawDescOnce.Do(func() {
		file_peer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_peer_proto_rawDesc), len(file_peer_proto_rawDesc)))
	})
	return file_peer_proto_rawDescData
}

var file_peer_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_peer_proto_goTypes = []any{
	(*KickUserRequest)(nil),  // 0: chatmesh.v1.KickUserRequest
	(*KickUserResponse)(nil), // 1: chatmesh.v1.KickUserResponse
	(*AddFriendNotice)(nil),  // 2: chatmesh.v1.AddFriendNotice
	(*AuthFriendNotice)(nil), // 3: chatmesh.v1.AuthFriendNotice
	(*ChatMessage)(nil),      // 4: chatmesh.v1.ChatMessage
	(*TextChatNotice)(nil),   // 5: chatmesh.v1.TextChatNotice
	(*NotifyResponse)(nil),   // 6: chatmesh.v1.NotifyResponse
}
var file_peer_proto_depIdxs = []int32{
	4, // 0: chatmesh.v1.TextChatNotice.messages:type_name -> chatmesh.v1.ChatMessage
	0, // 1: chatmesh.v1.PeerService.KickUser:input_type -> chatmesh.v1.KickUserRequest
	2, // 2: chatmesh.v1.PeerService.NotifyAddFriend:input_type -> chatmesh.v1.AddFriendNotice
	3, // 3: chatmesh.v1.PeerService.NotifyAuthFriend:input_type -> chatmesh.v1.AuthFriendNotice
	5, // 4: chatmesh.v1.PeerService.NotifyTextChat:input_type -> chatmesh.v1.TextChatNotice
	1, // 5: chatmesh.v1.PeerService.KickUser:output_type -> chatmesh.v1.KickUserResponse
	6, // 6: chatmesh.v1.PeerService.NotifyAddFriend:output_type -> chatmesh.v1.NotifyResponse
	6, // 7: chatmesh.v1.PeerService.NotifyAuthFriend:output_type -> chatmesh.v1.NotifyResponse
	6, // 8: chatmesh.v1.PeerService.NotifyTextChat:output_type -> chatmesh.v1.NotifyResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_peer_proto_init() }
func file_peer_proto_init() {
	if File_peer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_peer_proto_rawDesc), len(file_peer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_peer_proto_goTypes,
		DependencyIndexes: file_peer_proto_depIdxs,
		MessageInfos:      file_peer_proto_msgTypes,
	}.Build()
	File_peer_proto = out.File
	file_peer_proto_goTypes = nil
	file_peer_proto_depIdxs = nil
}
