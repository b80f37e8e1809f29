package quotation

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	megabyte = 1 << 20

	// MaxPCBFileSize bounds gerber archives.
	MaxPCBFileSize int64 = 50 * megabyte
	// MaxAssemblyFileSize bounds bill-of-materials sheets.
	MaxAssemblyFileSize int64 = 10 * megabyte
	// MaxContactFileSize bounds attachments to contact form messages.
	MaxContactFileSize int64 = 10 * megabyte
)

// FileRule describes what an uploaded design file must look like for a quotation type.
type FileRule struct {
	Extensions []string
	MaxSize    int64
}

var fileRules = map[entity.QuotationType]FileRule{
	entity.QuotationTypePCB: {
		Extensions: []string{".zip"},
		MaxSize:    MaxPCBFileSize,
	},
	entity.QuotationTypeAssembly: {
		Extensions: []string{".csv", ".xlsx", ".xls"},
		MaxSize:    MaxAssemblyFileSize,
	},
}

// ContactFileRule applies to files attached to contact form messages.
var ContactFileRule = FileRule{
	Extensions: []string{".zip", ".rar", ".pdf", ".gbr", ".csv", ".xlsx", ".xls"},
	MaxSize:    MaxContactFileSize,
}

// RuleFor returns the file rule of a quotation type.
func RuleFor(quotationType entity.QuotationType) (FileRule, bool) {
	rule, ok := fileRules[quotationType]
	return rule, ok
}

// CheckFile validates a file name and size against the rule of the quotation type.
func CheckFile(quotationType entity.QuotationType, name string, size int64) GuardResult {
	rule, ok := RuleFor(quotationType)
	if !ok {
		return deny(ViolationValidation, "unknown quotation type %q", quotationType)
	}

	return rule.Check(string(quotationType)+" quotations", name, size)
}

// Check validates a file name and size against the rule. Subject names what the rule applies to.
func (r FileRule) Check(subject, name string, size int64) GuardResult {
	ext := strings.ToLower(path.Ext(name))
	if !slices.Contains(r.Extensions, ext) {
		return deny(ViolationValidation, "%s accept %s files only", subject, strings.Join(r.Extensions, ", "))
	}

	if size <= 0 {
		return deny(ViolationValidation, "file is empty")
	}

	if size > r.MaxSize {
		return deny(ViolationValidation, "file exceeds the %dMB limit for %s", r.MaxSize/megabyte, subject)
	}

	return allow()
}

// Namespace returns the object key prefix that belongs to an owner.
func Namespace(ownerID uuid.UUID) string {
	return ownerID.String() + "/"
}

// ObjectKey builds the storage key for a file uploaded by an owner.
func ObjectKey(ownerID uuid.UUID, unixMilli int64, sanitizedName string) string {
	return fmt.Sprintf("%s%d-%s", Namespace(ownerID), unixMilli, sanitizedName)
}

// InNamespace reports whether a file path lies in the owner's namespace.
// Paths must be clean and must not escape the namespace.
func InNamespace(ownerID uuid.UUID, filePath string) bool {
	if ownerID == uuid.Nil || filePath == "" {
		return false
	}

	if path.Clean(filePath) != filePath || strings.Contains(filePath, "..") {
		return false
	}

	prefix := Namespace(ownerID)

	return strings.HasPrefix(filePath, prefix) && len(filePath) > len(prefix)
}

// OwnerOfKey extracts the owner id from a namespaced object key.
func OwnerOfKey(key string) (uuid.UUID, bool) {
	head, _, found := strings.Cut(key, "/")
	if !found {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(head)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// reservedConfigKeys are staff-controlled and never accepted from customers.
var reservedConfigKeys = []string{"total", "currency"}

// SubmitContext provides context for the submit guard.
type SubmitContext struct {
	CallerID uuid.UUID
	Type     entity.QuotationType
	Config   entity.QuotationConfig
	FilePath string
}

// CanSubmit evaluates the parts of a submission that need no I/O.
// Rules:
// - Caller must be identified
// - Type must be known and the config non-empty
// - Config must not carry staff-controlled keys
// - File must be present and in the caller's namespace
func CanSubmit(ctx SubmitContext) GuardResult {
	if ctx.CallerID == uuid.Nil {
		return deny(ViolationForbidden, "not permitted")
	}

	if !ctx.Type.IsValid() {
		return deny(ViolationValidation, "unknown quotation type %q", ctx.Type)
	}

	if len(ctx.Config) == 0 {
		return deny(ViolationValidation, "config is required")
	}

	for _, key := range reservedConfigKeys {
		if _, ok := ctx.Config[key]; ok {
			return deny(ViolationValidation, "config must not contain %q", key)
		}
	}

	if ctx.FilePath == "" {
		return deny(ViolationValidation, "design file is required")
	}

	if !InNamespace(ctx.CallerID, ctx.FilePath) {
		return deny(ViolationValidation, "file path is outside the caller's namespace")
	}

	return allow()
}
