package diagnosis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/kissandost/backend/internal/config"
	"github.com/kissandost/backend/internal/i18n"
)

// Report is the structured result of a crop-image analysis. Keys mirror
// what the model is instructed to emit.
type Report struct {
	CropDetected string   `json:"cropDetected"`
	Disease      string   `json:"disease"`
	Severity     string   `json:"severity"`
	Treatment    []string `json:"treatment"`
	Prevention   []string `json:"prevention"`
	Confidence   float64  `json:"confidence"`
}

// ErrAnalysisFailed is the single user-facing failure for this path; the
// underlying cause is only logged.
var ErrAnalysisFailed = fmt.Errorf("image analysis failed")

var dataURLPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp);base64,`)

// Service analyzes crop photos with the Gemini multimodal model.
type Service struct {
	client *genai.Client
	model  string
	mock   bool
}

// NewService creates the vision client. With the mock provider no client
// is built and a canned report is returned instead.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if cfg.Provider == config.ProviderMock && cfg.GeminiAPIKey == "" {
		return &Service{model: cfg.VisionModel, mock: true}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	return &Service{client: client, model: cfg.VisionModel}, nil
}

// AnalyzeCropImage sends the photo and a fixed reporting prompt to the
// model and parses the JSON report out of the reply. Every failure is
// collapsed into ErrAnalysisFailed for the caller.
func (s *Service) AnalyzeCropImage(ctx context.Context, imageBase64 string, lang i18n.Language) (*Report, error) {
	if s.mock {
		return mockReport(), nil
	}

	cleaned := dataURLPrefix.ReplaceAllString(imageBase64, "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		log.Printf("[diagnosis] bad image payload: %v", err)
		return nil, ErrAnalysisFailed
	}

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(data, "image/jpeg"),
		genai.NewPartFromText(buildPrompt(lang)),
	}, genai.RoleUser)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, []*genai.Content{content}, nil)
	if err != nil {
		log.Printf("[diagnosis] vision call failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	report, err := ParseReport(resp.Text())
	if err != nil {
		log.Printf("[diagnosis] unparsable report: %v", err)
		return nil, ErrAnalysisFailed
	}
	return report, nil
}

// ParseReport strips code-fence markers the model tends to wrap JSON in
// and decodes the fixed-key report.
func ParseReport(raw string) (*Report, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var report Report
	if err := json.Unmarshal([]byte(clean), &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

func buildPrompt(lang i18n.Language) string {
	return fmt.Sprintf(`Analyze this crop image.
1. Identify the crop.
2. Detect any disease, pest, or deficiency. If healthy, say so.
3. Provide a treatment plan (medicines, dosage).
4. Suggest prevention methods.

Format the output as a JSON object with keys:
"cropDetected", "disease", "severity", "treatment" (array of strings), "prevention" (array of strings), "confidence" (number 0-100).

Translate the CONTENT of the values into %s.
Return ONLY valid JSON.`, lang.Name())
}

func mockReport() *Report {
	return &Report{
		CropDetected: "Wheat",
		Disease:      "Leaf Rust",
		Severity:     "medium",
		Treatment:    []string{"Spray Propiconazole 25EC, 200ml per acre.", "Repeat after 15 days if spots remain."},
		Prevention:   []string{"Use rust-resistant seed varieties.", "Avoid late sowing."},
		Confidence:   72,
	}
}
