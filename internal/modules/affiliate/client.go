package affiliate

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client fetches affiliate product candidates for a keyword.
type Client interface {
	QueryProducts(ctx context.Context, keyword string) ([]Candidate, error)
}

const (
	queryMethod = "aliexpress.affiliate.product.query"

	// A hung gateway call must not starve the scan schedule.
	requestTimeout = 10 * time.Second
)

type aliexpressClient struct {
	appKey       string
	appSecret    string
	trackingID   string
	gatewayURL   string
	maxSalePrice int
	pageSize     int

	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewAliexpressClient builds a client for the AliExpress open-platform
// affiliate gateway. maxSalePrice is in cents, pageSize caps how many
// candidates one query returns.
func NewAliexpressClient(appKey, appSecret, trackingID, gatewayURL string, maxSalePrice, pageSize int) Client {
	return &aliexpressClient{
		appKey:       appKey,
		appSecret:    appSecret,
		trackingID:   trackingID,
		gatewayURL:   gatewayURL,
		maxSalePrice: maxSalePrice,
		pageSize:     pageSize,
		httpClient:   &http.Client{Timeout: requestTimeout},
		limiter:      rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

func (c *aliexpressClient) QueryProducts(ctx context.Context, keyword string) ([]Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("method", queryMethod)
	params.Set("app_key", c.appKey)
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	params.Set("sign_method", "sha256")
	params.Set("keywords", keyword)
	params.Set("max_sale_price", strconv.Itoa(c.maxSalePrice))
	params.Set("page_size", strconv.Itoa(c.pageSize))
	params.Set("tracking_id", c.trackingID)
	params.Set("target_currency", "EUR")
	params.Set("target_language", "EN")
	params.Set("sign", c.sign(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gatewayURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling affiliate gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var parsed queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding affiliate response: %w", err)
	}

	if parsed.ErrorResponse != nil {
		return nil, fmt.Errorf("affiliate gateway error %s: %s",
			parsed.ErrorResponse.Code, parsed.ErrorResponse.Msg)
	}
	if code := parsed.Result.RespResult.RespCode; code != 200 {
		return nil, fmt.Errorf("affiliate gateway resp_code %d: %s",
			code, parsed.Result.RespResult.RespMsg)
	}

	return parsed.Result.RespResult.Result.Products.Product, nil
}

// sign computes the gateway signature: parameters sorted by name,
// concatenated as name+value, HMAC-SHA256 over the app secret,
// uppercase hex.
func (c *aliexpressClient) sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(params.Get(k))
	}

	mac := hmac.New(sha256.New, []byte(c.appSecret))
	mac.Write([]byte(b.String()))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}
