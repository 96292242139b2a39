package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractExtractor calls AWS Textract's synchronous DetectDocumentText API.
// Credentials come from the default AWS chain (env, shared config); billing
// is per page, which is why batch runs consult the history store first.
type TextractExtractor struct {
	client *textract.Client
	logger *slog.Logger
}

func NewTextractExtractor(ctx context.Context, region string, logger *slog.Logger) (*TextractExtractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &TextractExtractor{
		client: textract.NewFromConfig(cfg),
		logger: logger,
	}, nil
}

func (e *TextractExtractor) Extract(ctx context.Context, path string) (RawText, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return RawText{Method: "textract"}, fmt.Errorf("read %s: %w", path, err)
	}

	out, err := e.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: data},
	})
	if err != nil {
		return RawText{Method: "textract"}, fmt.Errorf("textract: %w", err)
	}

	// LINE blocks arrive in reading order; that ordering is what the
	// keyword-anchored heuristics depend on.
	var lines []string
	for _, block := range out.Blocks {
		if block.BlockType == types.BlockTypeLine && block.Text != nil {
			lines = append(lines, *block.Text)
		}
	}
	e.logger.Debug("textract extraction done",
		"path", path, "lines", len(lines), "duration_ms", time.Since(start).Milliseconds())

	res, err := makeRawText(strings.Join(lines, "\n"), "textract", nil)
	res.Duration = time.Since(start)
	return res, err
}
