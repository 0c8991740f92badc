package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordNotifier(webhookURL string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (dn *DiscordNotifier) Send(report *PlanReport, reportPath string) error {
	if dn.webhookURL == "" {
		return nil
	}

	color := 3447003
	if report.Summary.FailedCount > 0 {
		color = 15158332
	} else if report.Summary.SkippedCount > 0 {
		color = 16776960
	}

	summaryValue := fmt.Sprintf(
		"✅ %d planned\n❌ %d failed\n⚠️ %d skipped (no metadata sidecar)",
		report.Summary.PlannedCount,
		report.Summary.FailedCount,
		report.Summary.SkippedCount,
	)

	payload := map[string]interface{}{
		"content": nil,
		"embeds": []map[string]interface{}{
			{
				"title": "Relocation Plan Complete",
				"color": color,
				"fields": []map[string]interface{}{
					{
						"name":   "Summary",
						"value":  summaryValue,
						"inline": false,
					},
					{
						"name":   "Report Location",
						"value":  reportPath,
						"inline": false,
					},
				},
				"footer": map[string]interface{}{
					"text": fmt.Sprintf("Duration: %.1fs", report.Summary.Duration.Seconds()),
				},
			},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := dn.client.Post(dn.webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
