// Package catalog holds the hard-coded marketing tables served on the
// public landing pages: trader leaderboard, instrument list, awards and
// platform benefits. The data is static by design.
package catalog

import "github.com/hunter122526/quantum2017/internal/core/domain"

var traders = []domain.Trader{
	{ID: "1", Name: "Anjali Sharma", Returns: 125.7, Followers: 1500, ChartData: []float64{10, 50, 30, 80, 60, 125.7}},
	{ID: "2", Name: "Rohan Gupta", Returns: 98.2, Followers: 850, ChartData: []float64{20, 40, 25, 70, 50, 98.2}},
	{ID: "3", Name: "Priya Patel", Returns: 75.4, Followers: 620, ChartData: []float64{30, 35, 50, 45, 60, 75.4}},
	{ID: "4", Name: "Vikram Singh", Returns: 62.1, Followers: 430, ChartData: []float64{15, 25, 20, 40, 55, 62.1}},
}

var instruments = []domain.Instrument{
	{Name: "EUR/USD", Category: "Forex", BuyPrice: 1.0712, SellPrice: 1.0714, Change: 0.25, Spread: 2},
	{Name: "USD/JPY", Category: "Forex", BuyPrice: 157.34, SellPrice: 157.36, Change: -0.11, Spread: 2},
	{Name: "TESLA", Category: "Stocks", BuyPrice: 182.58, SellPrice: 182.68, Change: 1.5, Spread: 10},
	{Name: "APPLE", Category: "Stocks", BuyPrice: 214.29, SellPrice: 214.39, Change: -0.8, Spread: 10},
	{Name: "GOLD", Category: "Commodities", BuyPrice: 2325.50, SellPrice: 2326.00, Change: 0.5, Spread: 50},
	{Name: "OIL", Category: "Commodities", BuyPrice: 80.50, SellPrice: 80.55, Change: -1.2, Spread: 5},
	{Name: "BITCOIN", Category: "Crypto", BuyPrice: 66050, SellPrice: 66080, Change: 2.1, Spread: 30},
	{Name: "ETHEREUM", Category: "Crypto", BuyPrice: 3560, SellPrice: 3562, Change: 1.8, Spread: 2},
}

var awards = []domain.Award{
	{Title: "Best Social Trading Platform", Issuer: "Finance Magnates Awards 2023"},
	{Title: "Most Innovative Broker", Issuer: "UK Forex Awards 2022"},
	{Title: "Best Mobile Trading App", Issuer: "Global Forex Awards 2022"},
	{Title: "Top CFD Broker", Issuer: "World Finance Awards 2021"},
	{Title: "Best Customer Service", Issuer: "International Business Magazine 2021"},
	{Title: "Best for Copy Trading", Issuer: "Daytrading.com 2020"},
	{Title: "Fastest Growing Broker", Issuer: "Forex Expo Dubai 2020"},
	{Title: "Best Educational Provider", Issuer: "The European 2019"},
}

var benefits = []domain.Benefit{
	{Title: "Transparent Environment", Description: "All our signal providers are ranked based on their realized P&L, ensuring full transparency.", Icon: "shield-check"},
	{Title: "Investment Tools", Description: "If you prefer self-trading, we still got you covered with all the tools a Pro-trader needs.", Icon: "briefcase"},
	{Title: "Licensed & Regulated", Description: "A fully licensed and regulated platform, ensuring a safe and secure trading environment.", Icon: "book-open"},
	{Title: "Customer Centric Culture", Description: "Whenever you need us, our customer support team is available 24/5 to assist you.", Icon: "users"},
	{Title: "Learning Environment", Description: "Our tools, resources, and community make it easy to learn and grow as a trader.", Icon: "star"},
	{Title: "Unique Advanced Features", Description: "Features like guard automation and social charts offer a unique trading experience.", Icon: "copy"},
}

// Traders returns the leaderboard, best performer first.
func Traders() []domain.Trader { return traders }

// Instruments returns the market overview table.
func Instruments() []domain.Instrument { return instruments }

// Awards returns the industry awards list.
func Awards() []domain.Award { return awards }

// Benefits returns the platform selling points.
func Benefits() []domain.Benefit { return benefits }
