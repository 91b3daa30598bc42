// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: exams/v1/exams.proto

package examsv1

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

type UploadExamRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	PatientId string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	UserId    string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName  string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType  string                 `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content   []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	// optional demographics used to select gender/age specific ranges
	Gender        string `protobuf:"bytes,6,opt,name=gender,proto3" json:"gender,omitempty"` // "M", "F" or empty
	Age           int32  `protobuf:"varint,7,opt,name=age,proto3" json:"age,omitempty"`      // 0 when unknown
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadExamRequest) Reset() {
	*x = UploadExamRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadExamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadExamRequest) ProtoMessage() {}

func (x *UploadExamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadExamRequest.ProtoReflect.Descriptor instead.
func (*UploadExamRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{0}
}

func (x *UploadExamRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *UploadExamRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadExamRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadExamRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadExamRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadExamRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *UploadExamRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

type UploadExamResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ExamId         string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	Status         string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	// true when an exam with identical content already existed for the patient;
	// exam_id then points at the prior exam and nothing new was stored
	Duplicate     bool `protobuf:"varint,5,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadExamResponse) Reset() {
	*x = UploadExamResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadExamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadExamResponse) ProtoMessage() {}

func (x *UploadExamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadExamResponse.ProtoReflect.Descriptor instead.
func (*UploadExamResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{1}
}

func (x *UploadExamResponse) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

func (x *UploadExamResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UploadExamResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadExamResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UploadExamResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type GetExamStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExamId        string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExamStatusRequest) Reset() {
	*x = GetExamStatusRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExamStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExamStatusRequest) ProtoMessage() {}

func (x *GetExamStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExamStatusRequest.ProtoReflect.Descriptor instead.
func (*GetExamStatusRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{2}
}

func (x *GetExamStatusRequest) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

type GetExamStatusResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	ExamId                string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	Status                string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	StatusMessage         string                 `protobuf:"bytes,3,opt,name=status_message,json=statusMessage,proto3" json:"status_message,omitempty"`
	ErrorMessage          string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessingStartedAt   string                 `protobuf:"bytes,5,opt,name=processing_started_at,json=processingStartedAt,proto3" json:"processing_started_at,omitempty"`
	ProcessingCompletedAt string                 `protobuf:"bytes,6,opt,name=processing_completed_at,json=processingCompletedAt,proto3" json:"processing_completed_at,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *GetExamStatusResponse) Reset() {
	*x = GetExamStatusResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExamStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExamStatusResponse) ProtoMessage() {}

func (x *GetExamStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExamStatusResponse.ProtoReflect.Descriptor instead.
func (*GetExamStatusResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{3}
}

func (x *GetExamStatusResponse) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

func (x *GetExamStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetExamStatusResponse) GetStatusMessage() string {
	if x != nil {
		return x.StatusMessage
	}
	return ""
}

func (x *GetExamStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetExamStatusResponse) GetProcessingStartedAt() string {
	if x != nil {
		return x.ProcessingStartedAt
	}
	return ""
}

func (x *GetExamStatusResponse) GetProcessingCompletedAt() string {
	if x != nil {
		return x.ProcessingCompletedAt
	}
	return ""
}

type GetExamResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExamId        string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExamResultRequest) Reset() {
	*x = GetExamResultRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExamResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExamResultRequest) ProtoMessage() {}

func (x *GetExamResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExamResultRequest.ProtoReflect.Descriptor instead.
func (*GetExamResultRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{4}
}

func (x *GetExamResultRequest) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

type GetExamResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Exam          *Exam                  `protobuf:"bytes,1,opt,name=exam,proto3" json:"exam,omitempty"`
	Biomarkers    []*Biomarker           `protobuf:"bytes,2,rep,name=biomarkers,proto3" json:"biomarkers,omitempty"`
	Summary       *AnalysisSummary       `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExamResultResponse) Reset() {
	*x = GetExamResultResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExamResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExamResultResponse) ProtoMessage() {}

func (x *GetExamResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExamResultResponse.ProtoReflect.Descriptor instead.
func (*GetExamResultResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{5}
}

func (x *GetExamResultResponse) GetExam() *Exam {
	if x != nil {
		return x.Exam
	}
	return nil
}

func (x *GetExamResultResponse) GetBiomarkers() []*Biomarker {
	if x != nil {
		return x.Biomarkers
	}
	return nil
}

func (x *GetExamResultResponse) GetSummary() *AnalysisSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type ListExamsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExamsRequest) Reset() {
	*x = ListExamsRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExamsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExamsRequest) ProtoMessage() {}

func (x *ListExamsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExamsRequest.ProtoReflect.Descriptor instead.
func (*ListExamsRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{6}
}

func (x *ListExamsRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ListExamsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListExamsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListExamsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Exams         []*Exam                `protobuf:"bytes,1,rep,name=exams,proto3" json:"exams,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExamsResponse) Reset() {
	*x = ListExamsResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExamsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExamsResponse) ProtoMessage() {}

func (x *ListExamsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExamsResponse.ProtoReflect.Descriptor instead.
func (*ListExamsResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{7}
}

func (x *ListExamsResponse) GetExams() []*Exam {
	if x != nil {
		return x.Exams
	}
	return nil
}

type GetDownloadURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExamId        string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDownloadURLRequest) Reset() {
	*x = GetDownloadURLRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDownloadURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDownloadURLRequest) ProtoMessage() {}

func (x *GetDownloadURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDownloadURLRequest.ProtoReflect.Descriptor instead.
func (*GetDownloadURLRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{8}
}

func (x *GetDownloadURLRequest) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

type GetDownloadURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDownloadURLResponse) Reset() {
	*x = GetDownloadURLResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDownloadURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDownloadURLResponse) ProtoMessage() {}

func (x *GetDownloadURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDownloadURLResponse.ProtoReflect.Descriptor instead.
func (*GetDownloadURLResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{9}
}

func (x *GetDownloadURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type ListReferenceRangesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional filter; empty lists every active range
	NormalizedName string `protobuf:"bytes,1,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListReferenceRangesRequest) Reset() {
	*x = ListReferenceRangesRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferenceRangesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferenceRangesRequest) ProtoMessage() {}

func (x *ListReferenceRangesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferenceRangesRequest.ProtoReflect.Descriptor instead.
func (*ListReferenceRangesRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{10}
}

func (x *ListReferenceRangesRequest) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

type ListReferenceRangesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ranges        []*ReferenceRange      `protobuf:"bytes,1,rep,name=ranges,proto3" json:"ranges,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReferenceRangesResponse) Reset() {
	*x = ListReferenceRangesResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReferenceRangesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReferenceRangesResponse) ProtoMessage() {}

func (x *ListReferenceRangesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReferenceRangesResponse.ProtoReflect.Descriptor instead.
func (*ListReferenceRangesResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{11}
}

func (x *ListReferenceRangesResponse) GetRanges() []*ReferenceRange {
	if x != nil {
		return x.Ranges
	}
	return nil
}

type ExportExamRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExamId        string                 `protobuf:"bytes,1,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExamRequest) Reset() {
	*x = ExportExamRequest{}
	mi := &file_exams_v1_exams_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExamRequest) ProtoMessage() {}

func (x *ExportExamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExamRequest.ProtoReflect.Descriptor instead.
func (*ExportExamRequest) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{12}
}

func (x *ExportExamRequest) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

type ExportExamResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExamResponse) Reset() {
	*x = ExportExamResponse{}
	mi := &file_exams_v1_exams_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExamResponse) ProtoMessage() {}

func (x *ExportExamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExamResponse.ProtoReflect.Descriptor instead.
func (*ExportExamResponse) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{13}
}

func (x *ExportExamResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Exam struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId      string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	UserId         string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName       string                 `protobuf:"bytes,4,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileSize       int32                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	MimeType       string                 `protobuf:"bytes,6,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Format         string                 `protobuf:"bytes,7,opt,name=format,proto3" json:"format,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,8,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Status         string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	StatusMessage  string                 `protobuf:"bytes,10,opt,name=status_message,json=statusMessage,proto3" json:"status_message,omitempty"`
	OcrConfidence  float32                `protobuf:"fixed32,11,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Exam) Reset() {
	*x = Exam{}
	mi := &file_exams_v1_exams_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Exam) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Exam) ProtoMessage() {}

func (x *Exam) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Exam.ProtoReflect.Descriptor instead.
func (*Exam) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{14}
}

func (x *Exam) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Exam) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *Exam) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Exam) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Exam) GetFileSize() int32 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Exam) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Exam) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Exam) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Exam) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Exam) GetStatusMessage() string {
	if x != nil {
		return x.StatusMessage
	}
	return ""
}

func (x *Exam) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *Exam) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Exam) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Exam) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Biomarker struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ExamId          string                 `protobuf:"bytes,2,opt,name=exam_id,json=examId,proto3" json:"exam_id,omitempty"`
	Name            string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	NormalizedName  string                 `protobuf:"bytes,4,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	Value           float64                `protobuf:"fixed64,5,opt,name=value,proto3" json:"value,omitempty"`
	Unit            string                 `protobuf:"bytes,6,opt,name=unit,proto3" json:"unit,omitempty"`
	Status          string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Severity        string                 `protobuf:"bytes,8,opt,name=severity,proto3" json:"severity,omitempty"`
	Interpretation  string                 `protobuf:"bytes,9,opt,name=interpretation,proto3" json:"interpretation,omitempty"`
	ReferenceMin    float64                `protobuf:"fixed64,10,opt,name=reference_min,json=referenceMin,proto3" json:"reference_min,omitempty"`
	ReferenceMax    float64                `protobuf:"fixed64,11,opt,name=reference_max,json=referenceMax,proto3" json:"reference_max,omitempty"`
	HasReference    bool                   `protobuf:"varint,12,opt,name=has_reference,json=hasReference,proto3" json:"has_reference,omitempty"`
	ConfidenceScore float64                `protobuf:"fixed64,13,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Biomarker) Reset() {
	*x = Biomarker{}
	mi := &file_exams_v1_exams_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Biomarker) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Biomarker) ProtoMessage() {}

func (x *Biomarker) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Biomarker.ProtoReflect.Descriptor instead.
func (*Biomarker) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{15}
}

func (x *Biomarker) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Biomarker) GetExamId() string {
	if x != nil {
		return x.ExamId
	}
	return ""
}

func (x *Biomarker) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Biomarker) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *Biomarker) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Biomarker) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Biomarker) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Biomarker) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Biomarker) GetInterpretation() string {
	if x != nil {
		return x.Interpretation
	}
	return ""
}

func (x *Biomarker) GetReferenceMin() float64 {
	if x != nil {
		return x.ReferenceMin
	}
	return 0
}

func (x *Biomarker) GetReferenceMax() float64 {
	if x != nil {
		return x.ReferenceMax
	}
	return 0
}

func (x *Biomarker) GetHasReference() bool {
	if x != nil {
		return x.HasReference
	}
	return false
}

func (x *Biomarker) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

type ReferenceRange struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BiomarkerName  string                 `protobuf:"bytes,2,opt,name=biomarker_name,json=biomarkerName,proto3" json:"biomarker_name,omitempty"`
	NormalizedName string                 `protobuf:"bytes,3,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	MinValue       float64                `protobuf:"fixed64,4,opt,name=min_value,json=minValue,proto3" json:"min_value,omitempty"`
	MaxValue       float64                `protobuf:"fixed64,5,opt,name=max_value,json=maxValue,proto3" json:"max_value,omitempty"`
	Unit           string                 `protobuf:"bytes,6,opt,name=unit,proto3" json:"unit,omitempty"`
	Gender         string                 `protobuf:"bytes,7,opt,name=gender,proto3" json:"gender,omitempty"` // empty means any
	AgeMin         int32                  `protobuf:"varint,8,opt,name=age_min,json=ageMin,proto3" json:"age_min,omitempty"`
	AgeMax         int32                  `protobuf:"varint,9,opt,name=age_max,json=ageMax,proto3" json:"age_max,omitempty"`
	Source         string                 `protobuf:"bytes,10,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ReferenceRange) Reset() {
	*x = ReferenceRange{}
	mi := &file_exams_v1_exams_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReferenceRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReferenceRange) ProtoMessage() {}

func (x *ReferenceRange) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReferenceRange.ProtoReflect.Descriptor instead.
func (*ReferenceRange) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{16}
}

func (x *ReferenceRange) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReferenceRange) GetBiomarkerName() string {
	if x != nil {
		return x.BiomarkerName
	}
	return ""
}

func (x *ReferenceRange) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *ReferenceRange) GetMinValue() float64 {
	if x != nil {
		return x.MinValue
	}
	return 0
}

func (x *ReferenceRange) GetMaxValue() float64 {
	if x != nil {
		return x.MaxValue
	}
	return 0
}

func (x *ReferenceRange) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *ReferenceRange) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *ReferenceRange) GetAgeMin() int32 {
	if x != nil {
		return x.AgeMin
	}
	return 0
}

func (x *ReferenceRange) GetAgeMax() int32 {
	if x != nil {
		return x.AgeMax
	}
	return 0
}

func (x *ReferenceRange) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type AnalysisSummary struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	TotalBiomarkers   int32                  `protobuf:"varint,1,opt,name=total_biomarkers,json=totalBiomarkers,proto3" json:"total_biomarkers,omitempty"`
	NormalCount       int32                  `protobuf:"varint,2,opt,name=normal_count,json=normalCount,proto3" json:"normal_count,omitempty"`
	AbnormalCount     int32                  `protobuf:"varint,3,opt,name=abnormal_count,json=abnormalCount,proto3" json:"abnormal_count,omitempty"`
	SeverityBreakdown map[string]int32       `protobuf:"bytes,4,rep,name=severity_breakdown,json=severityBreakdown,proto3" json:"severity_breakdown,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	CriticalCount     int32                  `protobuf:"varint,5,opt,name=critical_count,json=criticalCount,proto3" json:"critical_count,omitempty"`
	SummaryText       string                 `protobuf:"bytes,6,opt,name=summary_text,json=summaryText,proto3" json:"summary_text,omitempty"`
	GeneratedAt       string                 `protobuf:"bytes,7,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *AnalysisSummary) Reset() {
	*x = AnalysisSummary{}
	mi := &file_exams_v1_exams_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisSummary) ProtoMessage() {}

func (x *AnalysisSummary) ProtoReflect() protoreflect.Message {
	mi := &file_exams_v1_exams_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisSummary.ProtoReflect.Descriptor instead.
func (*AnalysisSummary) Descriptor() ([]byte, []int) {
	return file_exams_v1_exams_proto_rawDescGZIP(), []int{17}
}

func (x *AnalysisSummary) GetTotalBiomarkers() int32 {
	if x != nil {
		return x.TotalBiomarkers
	}
	return 0
}

func (x *AnalysisSummary) GetNormalCount() int32 {
	if x != nil {
		return x.NormalCount
	}
	return 0
}

func (x *AnalysisSummary) GetAbnormalCount() int32 {
	if x != nil {
		return x.AbnormalCount
	}
	return 0
}

func (x *AnalysisSummary) GetSeverityBreakdown() map[string]int32 {
	if x != nil {
		return x.SeverityBreakdown
	}
	return nil
}

func (x *AnalysisSummary) GetCriticalCount() int32 {
	if x != nil {
		return x.CriticalCount
	}
	return 0
}

func (x *AnalysisSummary) GetSummaryText() string {
	if x != nil {
		return x.SummaryText
	}
	return ""
}

func (x *AnalysisSummary) GetGeneratedAt() string {
	if x != nil {
		return x.GeneratedAt
	}
	return ""
}

var File_exams_v1_exams_proto protoreflect.FileDescriptor

const file_exams_v1_exams_proto_rawDesc = "" +
	"\n" +
	"\x14exams/v1/exams.proto\x12\bexams.v1\"\xc9\x01\n" +
	"\x11UploadExamRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x04 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\x12\x16\n" +
	"\x06gender\x18\x06 \x01(\tR\x06gender\x12\x10\n" +
	"\x03age\x18\a \x01(\x05R\x03age\"\xac\x01\n" +
	"\x12UploadExamResponse\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1c\n" +
	"\tduplicate\x18\x05 \x01(\bR\tduplicate\"/\n" +
	"\x14GetExamStatusRequest\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\"\x80\x02\n" +
	"\x15GetExamStatusResponse\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12%\n" +
	"\x0estatus_message\x18\x03 \x01(\tR\rstatusMessage\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x122\n" +
	"\x15processing_started_at\x18\x05 \x01(\tR\x13processingStartedAt\x126\n" +
	"\x17processing_completed_at\x18\x06 \x01(\tR\x15processingCompletedAt\"/\n" +
	"\x14GetExamResultRequest\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\"\xa5\x01\n" +
	"\x15GetExamResultResponse\x12\"\n" +
	"\x04exam\x18\x01 \x01(\v2\x0e.exams.v1.ExamR\x04exam\x123\n" +
	"\n" +
	"biomarkers\x18\x02 \x03(\v2\x13.exams.v1.BiomarkerR\n" +
	"biomarkers\x123\n" +
	"\asummary\x18\x03 \x01(\v2\x19.exams.v1.AnalysisSummaryR\asummary\"_\n" +
	"\x10ListExamsRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"9\n" +
	"\x11ListExamsResponse\x12$\n" +
	"\x05exams\x18\x01 \x03(\v2\x0e.exams.v1.ExamR\x05exams\"0\n" +
	"\x15GetDownloadURLRequest\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\"*\n" +
	"\x16GetDownloadURLResponse\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\"E\n" +
	"\x1aListReferenceRangesRequest\x12'\n" +
	"\x0fnormalized_name\x18\x01 \x01(\tR\x0enormalizedName\"O\n" +
	"\x1bListReferenceRangesResponse\x120\n" +
	"\x06ranges\x18\x01 \x03(\v2\x18.exams.v1.ReferenceRangeR\x06ranges\",\n" +
	"\x11ExportExamRequest\x12\x17\n" +
	"\aexam_id\x18\x01 \x01(\tR\x06examId\"(\n" +
	"\x12ExportExamResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xb0\x03\n" +
	"\x04Exam\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x04 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x05R\bfileSize\x12\x1b\n" +
	"\tmime_type\x18\x06 \x01(\tR\bmimeType\x12\x16\n" +
	"\x06format\x18\a \x01(\tR\x06format\x12(\n" +
	"\x10content_hash_hex\x18\b \x01(\tR\x0econtentHashHex\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12%\n" +
	"\x0estatus_message\x18\n" +
	" \x01(\tR\rstatusMessage\x12%\n" +
	"\x0eocr_confidence\x18\v \x01(\x02R\rocrConfidence\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\x91\x03\n" +
	"\tBiomarker\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aexam_id\x18\x02 \x01(\tR\x06examId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12'\n" +
	"\x0fnormalized_name\x18\x04 \x01(\tR\x0enormalizedName\x12\x14\n" +
	"\x05value\x18\x05 \x01(\x01R\x05value\x12\x12\n" +
	"\x04unit\x18\x06 \x01(\tR\x04unit\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x1a\n" +
	"\bseverity\x18\b \x01(\tR\bseverity\x12&\n" +
	"\x0einterpretation\x18\t \x01(\tR\x0einterpretation\x12#\n" +
	"\rreference_min\x18\n" +
	" \x01(\x01R\freferenceMin\x12#\n" +
	"\rreference_max\x18\v \x01(\x01R\freferenceMax\x12#\n" +
	"\rhas_reference\x18\f \x01(\bR\fhasReference\x12)\n" +
	"\x10confidence_score\x18\r \x01(\x01R\x0fconfidenceScore\"\xa0\x02\n" +
	"\x0eReferenceRange\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0ebiomarker_name\x18\x02 \x01(\tR\rbiomarkerName\x12'\n" +
	"\x0fnormalized_name\x18\x03 \x01(\tR\x0enormalizedName\x12\x1b\n" +
	"\tmin_value\x18\x04 \x01(\x01R\bminValue\x12\x1b\n" +
	"\tmax_value\x18\x05 \x01(\x01R\bmaxValue\x12\x12\n" +
	"\x04unit\x18\x06 \x01(\tR\x04unit\x12\x16\n" +
	"\x06gender\x18\a \x01(\tR\x06gender\x12\x17\n" +
	"\aage_min\x18\b \x01(\x05R\x06ageMin\x12\x17\n" +
	"\aage_max\x18\t \x01(\x05R\x06ageMax\x12\x16\n" +
	"\x06source\x18\n" +
	" \x01(\tR\x06source\"\x9a\x03\n" +
	"\x0fAnalysisSummary\x12)\n" +
	"\x10total_biomarkers\x18\x01 \x01(\x05R\x0ftotalBiomarkers\x12!\n" +
	"\fnormal_count\x18\x02 \x01(\x05R\vnormalCount\x12%\n" +
	"\x0eabnormal_count\x18\x03 \x01(\x05R\rabnormalCount\x12_\n" +
	"\x12severity_breakdown\x18\x04 \x03(\v20.exams.v1.AnalysisSummary.SeverityBreakdownEntryR\x11severityBreakdown\x12%\n" +
	"\x0ecritical_count\x18\x05 \x01(\x05R\rcriticalCount\x12!\n" +
	"\fsummary_text\x18\x06 \x01(\tR\vsummaryText\x12!\n" +
	"\fgenerated_at\x18\a \x01(\tR\vgeneratedAt\x1aD\n" +
	"\x16SeverityBreakdownEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x012\x95\x03\n" +
	"\vExamService\x12G\n" +
	"\n" +
	"UploadExam\x12\x1b.exams.v1.UploadExamRequest\x1a\x1c.exams.v1.UploadExamResponse\x12P\n" +
	"\rGetExamStatus\x12\x1e.exams.v1.GetExamStatusRequest\x1a\x1f.exams.v1.GetExamStatusResponse\x12P\n" +
	"\rGetExamResult\x12\x1e.exams.v1.GetExamResultRequest\x1a\x1f.exams.v1.GetExamResultResponse\x12D\n" +
	"\tListExams\x12\x1a.exams.v1.ListExamsRequest\x1a\x1b.exams.v1.ListExamsResponse\x12S\n" +
	"\x0eGetDownloadURL\x12\x1f.exams.v1.GetDownloadURLRequest\x1a .exams.v1.GetDownloadURLResponse2v\n" +
	"\x10ReferenceService\x12b\n" +
	"\x13ListReferenceRanges\x12$.exams.v1.ListReferenceRangesRequest\x1a%.exams.v1.ListReferenceRangesResponse2X\n" +
	"\rExportService\x12G\n" +
	"\n" +
	"ExportExam\x12\x1b.exams.v1.ExportExamRequest\x1a\x1c.exams.v1.ExportExamResponseB?Z=github.com/examtrack/exam-analyzer/gen/proto/exams/v1;examsv1b\x06proto3"

var (
	file_exams_v1_exams_proto_rawDescOnce sync.Once
	file_exams_v1_exams_proto_rawDescData []byte
)

func file_exams_v1_exams_proto_rawDescGZIP() []byte {
	file_exams_v1_exams_proto_rawDescOnce.Do(func() {
		file_exams_v1_exams_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_exams_v1_exams_proto_rawDesc), len(file_exams_v1_exams_proto_rawDesc)))
	})
	return file_exams_v1_exams_proto_rawDescData
}

var file_exams_v1_exams_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_exams_v1_exams_proto_goTypes = []any{
	(*UploadExamRequest)(nil),           // 0: exams.v1.UploadExamRequest
	(*UploadExamResponse)(nil),          // 1: exams.v1.UploadExamResponse
	(*GetExamStatusRequest)(nil),        // 2: exams.v1.GetExamStatusRequest
	(*GetExamStatusResponse)(nil),       // 3: exams.v1.GetExamStatusResponse
	(*GetExamResultRequest)(nil),        // 4: exams.v1.GetExamResultRequest
	(*GetExamResultResponse)(nil),       // 5: exams.v1.GetExamResultResponse
	(*ListExamsRequest)(nil),            // 6: exams.v1.ListExamsRequest
	(*ListExamsResponse)(nil),           // 7: exams.v1.ListExamsResponse
	(*GetDownloadURLRequest)(nil),       // 8: exams.v1.GetDownloadURLRequest
	(*GetDownloadURLResponse)(nil),      // 9: exams.v1.GetDownloadURLResponse
	(*ListReferenceRangesRequest)(nil),  // 10: exams.v1.ListReferenceRangesRequest
	(*ListReferenceRangesResponse)(nil), // 11: exams.v1.ListReferenceRangesResponse
	(*ExportExamRequest)(nil),           // 12: exams.v1.ExportExamRequest
	(*ExportExamResponse)(nil),          // 13: exams.v1.ExportExamResponse
	(*Exam)(nil),                        // 14: exams.v1.Exam
	(*Biomarker)(nil),                   // 15: exams.v1.Biomarker
	(*ReferenceRange)(nil),              // 16: exams.v1.ReferenceRange
	(*AnalysisSummary)(nil),             // 17: exams.v1.AnalysisSummary
	nil,                                 // 18: exams.v1.AnalysisSummary.SeverityBreakdownEntry
}
var file_exams_v1_exams_proto_depIdxs = []int32{
	14, // 0: exams.v1.GetExamResultResponse.exam:type_name -> exams.v1.Exam
	15, // 1: exams.v1.GetExamResultResponse.biomarkers:type_name -> exams.v1.Biomarker
	17, // 2: exams.v1.GetExamResultResponse.summary:type_name -> exams.v1.AnalysisSummary
	14, // 3: exams.v1.ListExamsResponse.exams:type_name -> exams.v1.Exam
	16, // 4: exams.v1.ListReferenceRangesResponse.ranges:type_name -> exams.v1.ReferenceRange
	18, // 5: exams.v1.AnalysisSummary.severity_breakdown:type_name -> exams.v1.AnalysisSummary.SeverityBreakdownEntry
	0,  // 6: exams.v1.ExamService.UploadExam:input_type -> exams.v1.UploadExamRequest
	2,  // 7: exams.v1.ExamService.GetExamStatus:input_type -> exams.v1.GetExamStatusRequest
	4,  // 8: exams.v1.ExamService.GetExamResult:input_type -> exams.v1.GetExamResultRequest
	6,  // 9: exams.v1.ExamService.ListExams:input_type -> exams.v1.ListExamsRequest
	8,  // 10: exams.v1.ExamService.GetDownloadURL:input_type -> exams.v1.GetDownloadURLRequest
	10, // 11: exams.v1.ReferenceService.ListReferenceRanges:input_type -> exams.v1.ListReferenceRangesRequest
	12, // 12: exams.v1.ExportService.ExportExam:input_type -> exams.v1.ExportExamRequest
	1,  // 13: exams.v1.ExamService.UploadExam:output_type -> exams.v1.UploadExamResponse
	3,  // 14: exams.v1.ExamService.GetExamStatus:output_type -> exams.v1.GetExamStatusResponse
	5,  // 15: exams.v1.ExamService.GetExamResult:output_type -> exams.v1.GetExamResultResponse
	7,  // 16: exams.v1.ExamService.ListExams:output_type -> exams.v1.ListExamsResponse
	9,  // 17: exams.v1.ExamService.GetDownloadURL:output_type -> exams.v1.GetDownloadURLResponse
	11, // 18: exams.v1.ReferenceService.ListReferenceRanges:output_type -> exams.v1.ListReferenceRangesResponse
	13, // 19: exams.v1.ExportService.ExportExam:output_type -> exams.v1.ExportExamResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_exams_v1_exams_proto_init() }
func file_exams_v1_exams_proto_init() {
	if File_exams_v1_exams_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_exams_v1_exams_proto_rawDesc), len(file_exams_v1_exams_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_exams_v1_exams_proto_goTypes,
		DependencyIndexes: file_exams_v1_exams_proto_depIdxs,
		MessageInfos:      file_exams_v1_exams_proto_msgTypes,
	}.Build()
	File_exams_v1_exams_proto = out.File
	file_exams_v1_exams_proto_goTypes = nil
	file_exams_v1_exams_proto_depIdxs = nil
}
