package affiliate

// Candidate is a product returned by the affiliate gateway, not yet
// normalized or persisted. SalePrice and MainImageURL may be absent;
// PromotionLink is empty when the gateway issued no tracked link.
type Candidate struct {
	ProductID     int64   `json:"product_id"`
	Title         string  `json:"product_title"`
	SalePrice     *string `json:"target_sale_price"`
	MainImageURL  *string `json:"product_main_image_url"`
	PromotionLink string  `json:"promotion_link"`
	DetailURL     string  `json:"product_detail_url"`
}

// queryResponse mirrors the envelope of aliexpress.affiliate.product.query.
type queryResponse struct {
	Result struct {
		RespResult struct {
			RespCode int    `json:"resp_code"`
			RespMsg  string `json:"resp_msg"`
			Result   struct {
				TotalRecordCount int `json:"total_record_count"`
				Products         struct {
					Product []Candidate `json:"product"`
				} `json:"products"`
			} `json:"result"`
		} `json:"resp_result"`
	} `json:"aliexpress_affiliate_product_query_response"`
	ErrorResponse *struct {
		Code string `json:"code"`
		Msg  string `json:"msg"`
	} `json:"error_response"`
}
