package akahu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/renttrack/renttrack/consts"
	"github.com/renttrack/renttrack/entity"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/utils"
)

// Client fetches a landlord's bank transactions from the Akahu aggregator.
// Any failure (transport, non-2xx, malformed body) degrades to an empty slice:
// the caller then records a missed payment instead of aborting the run.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = consts.DefaultAkahuBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type transactionListResponse struct {
	Items []entity.BankTransaction `json:"items"`
}

// FetchTransactions requests the half-open window [checkDate, checkDate+1d).
func (c *Client) FetchTransactions(ctx context.Context, credential model.BankCredential, checkDate time.Time) []entity.BankTransaction {
	params := url.Values{}
	params.Set("start", checkDate.Format(utils.DateLayout))
	params.Set("end", checkDate.AddDate(0, 0, 1).Format(utils.DateLayout))
	endpoint := c.baseURL + "/transactions?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Errorf("[Akahu] Failed to build request: %v", err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+credential.UserToken)
	req.Header.Set("X-Akahu-ID", credential.AppToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("[Akahu] Transaction fetch failed for landlord %d: %v", credential.LandlordID, err)
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("[Akahu] API error %d for landlord %d: %s",
			resp.StatusCode, credential.LandlordID, strings.TrimSpace(string(body)))
		return nil
	}

	var parsed transactionListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Errorf("[Akahu] Failed to decode transaction list for landlord %d: %v", credential.LandlordID, err)
		return nil
	}

	log.Infof("[Akahu] Fetched %d transactions for landlord %d on %s",
		len(parsed.Items), credential.LandlordID, checkDate.Format(utils.DateLayout))
	return parsed.Items
}
