package domain

// Catalog entities backing the marketing pages. The tables are hard-coded;
// there is no persistence or admin surface for them.

// Trader is a leaderboard entry on the copy-trading landing page.
type Trader struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Returns   float64   `json:"returns"`
	Followers int       `json:"followers"`
	ChartData []float64 `json:"chart_data"`
}

// Instrument is a tradeable market shown in the market overview.
type Instrument struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Change    float64 `json:"change"`
	Spread    float64 `json:"spread"`
}

// Award is an industry award listed on the landing page.
type Award struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
}

// Benefit is a platform selling point. Icon is a symbolic tag the frontend
// maps to its own icon set.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
