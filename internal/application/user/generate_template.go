package user

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
)

const (
	TemplateFileName    = "user_template.xlsx"
	TemplateContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	templateSheetName   = "Users"
)

var templateExampleRow = []string{"John", "Doe", "john@example.com", "1234567890", "ABCDE1234F"}

type SpreadsheetWriter interface {
	WriteSheet(ctx context.Context, sheetName string, rows [][]string) ([]byte, error)
}

type GenerateTemplateOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

type GenerateTemplate interface {
	Execute(ctx context.Context) (GenerateTemplateOutput, error)
}

// generateTemplate renders the workbook once and serves the same bytes on
// every call.
type generateTemplate struct {
	writer SpreadsheetWriter

	mu      sync.Mutex
	content []byte
}

func NewGenerateTemplate(writer SpreadsheetWriter) GenerateTemplate {
	return &generateTemplate{writer: writer}
}

func (uc *generateTemplate) Execute(ctx context.Context) (GenerateTemplateOutput, error) {
	content, err := uc.render(ctx)
	if err != nil {
		return GenerateTemplateOutput{}, err
	}

	return GenerateTemplateOutput{
		FileName:    TemplateFileName,
		ContentType: TemplateContentType,
		Content:     append([]byte(nil), content...),
	}, nil
}

func (uc *generateTemplate) render(ctx context.Context) ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.content != nil {
		return uc.content, nil
	}

	rows := [][]string{
		append([]string(nil), domain.ImportColumns...),
		append([]string(nil), templateExampleRow...),
	}

	content, err := uc.writer.WriteSheet(ctx, templateSheetName, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateTemplate, err)
	}

	uc.content = content
	return content, nil
}
