package telegram

// PassportData contains information about Telegram Passport data shared
// with the bot by the user.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// PassportFile represents a file uploaded to Telegram Passport.
type PassportFile struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int    `json:"file_size"`
	FileDate     int64  `json:"file_date"`
}

// EncryptedPassportElement contains information about documents or other
// Telegram Passport elements shared with the bot by the user.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        string         `json:"data,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// EncryptedCredentials contains data required for decrypting and
// authenticating EncryptedPassportElement.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// PassportElementError is the closed set of error shapes accepted by
// setPassportDataErrors. The shapes share most of their fields and are
// told apart by their "source" value.
type PassportElementError interface {
	passportElementError()
}

func (*PassportElementErrorDataField) passportElementError()        {}
func (*PassportElementErrorFrontSide) passportElementError()        {}
func (*PassportElementErrorReverseSide) passportElementError()      {}
func (*PassportElementErrorSelfie) passportElementError()           {}
func (*PassportElementErrorFile) passportElementError()             {}
func (*PassportElementErrorFiles) passportElementError()            {}
func (*PassportElementErrorTranslationFile) passportElementError()  {}
func (*PassportElementErrorTranslationFiles) passportElementError() {}
func (*PassportElementErrorUnspecified) passportElementError()      {}

// Source values of the PassportElementError shapes.
const (
	ErrorSourceData             = "data"
	ErrorSourceFrontSide        = "front_side"
	ErrorSourceReverseSide      = "reverse_side"
	ErrorSourceSelfie           = "selfie"
	ErrorSourceFile             = "file"
	ErrorSourceFiles            = "files"
	ErrorSourceTranslationFile  = "translation_file"
	ErrorSourceTranslationFiles = "translation_files"
	ErrorSourceUnspecified      = "unspecified"
)

// PassportElementErrorDataField reports an issue in one of the data
// fields provided by the user.
type PassportElementErrorDataField struct {
	Source    string `json:"source"`
	Type      string `json:"type"`
	FieldName string `json:"field_name"`
	DataHash  string `json:"data_hash"`
	Message   string `json:"message"`
}

// PassportElementErrorFrontSide reports an issue with the front side of
// a document.
type PassportElementErrorFrontSide struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

// PassportElementErrorReverseSide reports an issue with the reverse side
// of a document.
type PassportElementErrorReverseSide struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

// PassportElementErrorSelfie reports an issue with the selfie attached
// to a document.
type PassportElementErrorSelfie struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

// PassportElementErrorFile reports an issue with a document scan.
type PassportElementErrorFile struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

// PassportElementErrorFiles reports an issue with a list of scans.
type PassportElementErrorFiles struct {
	Source     string   `json:"source"`
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

// PassportElementErrorTranslationFile reports an issue with one of the
// files comprising a document translation.
type PassportElementErrorTranslationFile struct {
	Source   string `json:"source"`
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

// PassportElementErrorTranslationFiles reports an issue with the
// translated version of a document.
type PassportElementErrorTranslationFiles struct {
	Source     string   `json:"source"`
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

// PassportElementErrorUnspecified reports an issue in an unspecified
// place.
type PassportElementErrorUnspecified struct {
	Source      string `json:"source"`
	Type        string `json:"type"`
	ElementHash string `json:"element_hash"`
	Message     string `json:"message"`
}

// passportElementErrorCandidates relies on the "source" discriminant:
// the front side, reverse side, selfie and file shapes are identical by
// field set, so shape matching alone could not tell them apart.
var passportElementErrorCandidates = []candidate[PassportElementError]{
	{"PassportElementErrorDataField", "source", ErrorSourceData, []string{"source", "type", "field_name", "data_hash", "message"}, func() PassportElementError { return new(PassportElementErrorDataField) }},
	{"PassportElementErrorFrontSide", "source", ErrorSourceFrontSide, []string{"source", "type", "file_hash", "message"}, func() PassportElementError { return new(PassportElementErrorFrontSide) }},
	{"PassportElementErrorReverseSide", "source", ErrorSourceReverseSide, []string{"source", "type", "file_hash", "message"}, func() PassportElementError { return new(PassportElementErrorReverseSide) }},
	{"PassportElementErrorSelfie", "source", ErrorSourceSelfie, []string{"source", "type", "file_hash", "message"}, func() PassportElementError { return new(PassportElementErrorSelfie) }},
	{"PassportElementErrorFile", "source", ErrorSourceFile, []string{"source", "type", "file_hash", "message"}, func() PassportElementError { return new(PassportElementErrorFile) }},
	{"PassportElementErrorFiles", "source", ErrorSourceFiles, []string{"source", "type", "file_hashes", "message"}, func() PassportElementError { return new(PassportElementErrorFiles) }},
	{"PassportElementErrorTranslationFile", "source", ErrorSourceTranslationFile, []string{"source", "type", "file_hash", "message"}, func() PassportElementError { return new(PassportElementErrorTranslationFile) }},
	{"PassportElementErrorTranslationFiles", "source", ErrorSourceTranslationFiles, []string{"source", "type", "file_hashes", "message"}, func() PassportElementError { return new(PassportElementErrorTranslationFiles) }},
	{"PassportElementErrorUnspecified", "source", ErrorSourceUnspecified, []string{"source", "type", "element_hash", "message"}, func() PassportElementError { return new(PassportElementErrorUnspecified) }},
}

// DecodePassportElementError decodes a JSON payload into the matching
// PassportElementError shape.
func DecodePassportElementError(data []byte) (PassportElementError, error) {
	return decodeUnion("PassportElementError", data, passportElementErrorCandidates)
}
