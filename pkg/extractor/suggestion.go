package extractor

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/youdict/models"
)

// suggestSuccessCode is the status the suggest endpoint reports inside the
// payload on success; transport-level status is checked by the fetcher.
const suggestSuccessCode = 200

type suggestResponse struct {
	Result struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"result"`
	Data struct {
		Query   string `json:"query"`
		Entries []struct {
			Entry   string `json:"entry"`
			Explain string `json:"explain"`
		} `json:"entries"`
	} `json:"data"`
}

// ExtractSuggestions decodes one suggestion payload. A non-success payload
// code fails with the server's own message so the user sees it verbatim.
func ExtractSuggestions(raw []byte) (*models.SuggestionResult, error) {
	var resp suggestResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion payload: %w", err)
	}

	if resp.Result.Code != suggestSuccessCode {
		return nil, fmt.Errorf("%s", resp.Result.Msg)
	}

	result := &models.SuggestionResult{Query: resp.Data.Query}
	for _, e := range resp.Data.Entries {
		result.Entries = append(result.Entries, models.SuggestionEntry{
			Entry:   e.Entry,
			Explain: e.Explain,
		})
	}
	return result, nil
}
