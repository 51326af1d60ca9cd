package order

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxProductNameLength  = 255
	MaxDescriptionLength  = 2000
	MaxInstructionsLength = 1000
	MaxSizeLength         = 255
	MaxCityLength         = 100
	MaxAddressLength      = 500

	DefaultCurrency = "USD"
)

var (
	FeeRate = decimal.RequireFromString("0.05")
	MinFee  = decimal.RequireFromString("0.50")
	MaxFee  = decimal.RequireFromString("10.00")

	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	countryRegex  = regexp.MustCompile(`^[A-Z]{2}$`)
)

// CalculateFee returns max(MinFee, min(reward*FeeRate, MaxFee)) rounded to cents.
func CalculateFee(reward decimal.Decimal) decimal.Decimal {
	fee := reward.Mul(FeeRate)
	fee = decimal.Min(fee, MaxFee)
	fee = decimal.Max(fee, MinFee)
	return fee.Round(2)
}

type Pricing struct {
	reward   decimal.Decimal
	fee      decimal.Decimal
	total    decimal.Decimal
	currency string
}

func NewPricing(reward decimal.Decimal, currency string) (Pricing, error) {
	reward = reward.Round(2)
	if !reward.IsPositive() {
		return Pricing{}, ErrInvalidReward
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return Pricing{}, err
	}
	fee := CalculateFee(reward)
	return Pricing{
		reward:   reward,
		fee:      fee,
		total:    reward.Add(fee),
		currency: cur,
	}, nil
}

func ReconstructPricing(reward, fee, total decimal.Decimal, currency string) Pricing {
	return Pricing{reward: reward, fee: fee, total: total, currency: currency}
}

func (p Pricing) Reward() decimal.Decimal      { return p.reward }
func (p Pricing) PlatformFee() decimal.Decimal { return p.fee }
func (p Pricing) TotalCost() decimal.Decimal   { return p.total }
func (p Pricing) Currency() string             { return p.currency }

// NormalizeCurrency upper-cases and validates an ISO 4217 code. Empty defaults to USD.
func NormalizeCurrency(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency, nil
	}
	if !currencyRegex.MatchString(s) {
		return "", ErrInvalidCurrency
	}
	return s, nil
}

type Product struct {
	name        string
	url         string
	description *string
	imageURL    *string
	price       decimal.Decimal
	currency    string
	quantity    int
}

type ProductInput struct {
	Name        string
	URL         string
	Description *string
	ImageURL    *string
	Price       decimal.Decimal
	Currency    string
	Quantity    int
}

func NewProduct(in ProductInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxProductNameLength {
		return Product{}, ErrInvalidProduct
	}
	if !isHTTPURL(in.URL) {
		return Product{}, ErrInvalidProduct
	}
	if in.ImageURL != nil && *in.ImageURL != "" && !isHTTPURL(*in.ImageURL) {
		return Product{}, ErrInvalidProduct
	}
	if in.Price.IsNegative() {
		return Product{}, ErrInvalidProductPrice
	}
	if in.Quantity < 1 {
		return Product{}, ErrInvalidQuantity
	}
	cur, err := NormalizeCurrency(in.Currency)
	if err != nil {
		return Product{}, err
	}
	desc, err := optionalText(in.Description, MaxDescriptionLength)
	if err != nil {
		return Product{}, err
	}
	img := trimmedOrNil(in.ImageURL)
	return Product{
		name:        name,
		url:         strings.TrimSpace(in.URL),
		description: desc,
		imageURL:    img,
		price:       in.Price.Round(2),
		currency:    cur,
		quantity:    in.Quantity,
	}, nil
}

func ReconstructProduct(in ProductInput) Product {
	return Product{
		name:        in.Name,
		url:         in.URL,
		description: in.Description,
		imageURL:    in.ImageURL,
		price:       in.Price,
		currency:    in.Currency,
		quantity:    in.Quantity,
	}
}

func (p Product) Name() string           { return p.name }
func (p Product) URL() string            { return p.url }
func (p Product) Description() *string   { return p.description }
func (p Product) ImageURL() *string      { return p.imageURL }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) Currency() string       { return p.currency }
func (p Product) Quantity() int          { return p.quantity }

func (p Product) input() ProductInput {
	return ProductInput{
		Name:        p.name,
		URL:         p.url,
		Description: p.description,
		ImageURL:    p.imageURL,
		Price:       p.price,
		Currency:    p.currency,
		Quantity:    p.quantity,
	}
}

type Destination struct {
	country string
	city    string
	address *string
}

func NewDestination(country, city string, address *string) (Destination, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	city = strings.TrimSpace(city)
	if !countryRegex.MatchString(country) || city == "" || utf8.RuneCountInString(city) > MaxCityLength {
		return Destination{}, ErrInvalidDestination
	}
	addr, err := optionalText(address, MaxAddressLength)
	if err != nil {
		return Destination{}, err
	}
	return Destination{country: country, city: city, address: addr}, nil
}

func ReconstructDestination(country, city string, address *string) Destination {
	return Destination{country: country, city: city, address: address}
}

func (d Destination) Country() string  { return d.country }
func (d Destination) City() string     { return d.city }
func (d Destination) Address() *string { return d.address }

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// optionalText trims s; blank becomes nil.
func optionalText(s *string, max int) (*string, error) {
	t := trimmedOrNil(s)
	if t != nil && utf8.RuneCountInString(*t) > max {
		return nil, ErrTextTooLong
	}
	return t, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
