// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        v5.29.3
// source: extractor/v1/extractor.proto

package extractorv1

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

type ExtractRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// BCP-47-ish locale hint, e.g. "en-US", "de-DE". Optional.
	Locale        string `protobuf:"bytes,2,opt,name=locale,proto3" json:"locale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractRequest) GetLocale() string {
	if x != nil {
		return x.Locale
	}
	return ""
}

type Field struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Name  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// Canonical string form: ISO-8601 for dates, fixed two-decimal strings for
	// amounts, JSON for line items.
	Value         string  `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Confidence    float64 `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Ambiguous     bool    `protobuf:"varint,4,opt,name=ambiguous,proto3" json:"ambiguous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Field) Reset() {
	*x = Field{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Field) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Field) ProtoMessage() {}

func (x *Field) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Field.ProtoReflect.Descriptor instead.
func (*Field) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{1}
}

func (x *Field) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Field) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Field) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Field) GetAmbiguous() bool {
	if x != nil {
		return x.Ambiguous
	}
	return false
}

type Issue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Fields        []string               `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Issue) Reset() {
	*x = Issue{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Issue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Issue) ProtoMessage() {}

func (x *Issue) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Issue.ProtoReflect.Descriptor instead.
func (*Issue) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{2}
}

func (x *Issue) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Issue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Issue) GetFields() []string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Issue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ExtractResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Fields            []*Field               `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	Issues            []*Issue               `protobuf:"bytes,2,rep,name=issues,proto3" json:"issues,omitempty"`
	OverallConfidence float64                `protobuf:"fixed64,3,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	// "complete" | "partial" | "failed"
	Status string `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	// fatal error message; set only when status is "failed"
	Error         string `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractResponse) GetFields() []*Field {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ExtractResponse) GetIssues() []*Issue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *ExtractResponse) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *ExtractResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_extractor_v1_extractor_proto protoreflect.FileDescriptor

const file_extractor_v1_extractor_proto_rawDesc = "" +
	"\n" +
	"\x1cextractor/v1/extractor.proto\x12\fextractor.v1\"<\n" +
	"\x0eExtractRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x16\n" +
	"\x06locale\x18\x02 \x01(\tR\x06locale\"o\n" +
	"\x05Field\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x1c\n" +
	"\tambiguous\x18\x04 \x01(\bR\tambiguous\"i\n" +
	"\x05Issue\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x16\n" +
	"\x06fields\x18\x03 \x03(\tR\x06fields\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\"\xc8\x01\n" +
	"\x0fExtractResponse\x12+\n" +
	"\x06fields\x18\x01 \x03(\v2\x13.extractor.v1.FieldR\x06fields\x12+\n" +
	"\x06issues\x18\x02 \x03(\v2\x13.extractor.v1.IssueR\x06issues\x12-\n" +
	"\x12overall_confidence\x18\x03 \x01(\x01R\x11overallConfidence\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error2Z\n" +
	"\x10ExtractorService\x12F\n" +
	"\aExtract\x12\x1c.extractor.v1.ExtractRequest\x1a\x1d.extractor.v1.ExtractResponseBJZHgithub.com/joseph-ayodele/invoice-extractor/gen/extractor/v1;extractorv1b\x06proto3"

var (
	file_extractor_v1_extractor_proto_rawDescOnce sync.Once
	file_extractor_v1_extractor_proto_rawDescData []byte
)

func file_extractor_v1_extractor_proto_rawDescGZIP() []byte {
	file_extractor_v1_extractor_proto_rawDescOnce.Do(func() {
		file_extractor_v1_extractor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)))
	})
	return file_extractor_v1_extractor_proto_rawDescData
}

var file_extractor_v1_extractor_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_extractor_v1_extractor_proto_goTypes = []any{
	(*ExtractRequest)(nil),  // 0: extractor.v1.ExtractRequest
	(*Field)(nil),           // 1: extractor.v1.Field
	(*Issue)(nil),           // 2: extractor.v1.Issue
	(*ExtractResponse)(nil), // 3: extractor.v1.ExtractResponse
}
var file_extractor_v1_extractor_proto_depIdxs = []int32{
	1, // 0: extractor.v1.ExtractResponse.fields:type_name -> extractor.v1.Field
	2, // 1: extractor.v1.ExtractResponse.issues:type_name -> extractor.v1.Issue
	0, // 2: extractor.v1.ExtractorService.Extract:input_type -> extractor.v1.ExtractRequest
	3, // 3: extractor.v1.ExtractorService.Extract:output_type -> extractor.v1.ExtractResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_extractor_v1_extractor_proto_init() }
func file_extractor_v1_extractor_proto_init() {
	if File_extractor_v1_extractor_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_extractor_v1_extractor_proto_goTypes,
		DependencyIndexes: file_extractor_v1_extractor_proto_depIdxs,
		MessageInfos:      file_extractor_v1_extractor_proto_msgTypes,
	}.Build()
	File_extractor_v1_extractor_proto = out.File
	file_extractor_v1_extractor_proto_goTypes = nil
	file_extractor_v1_extractor_proto_depIdxs = nil
}
