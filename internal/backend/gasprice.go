package backend

import (
	"encoding/json"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const maxFractionalDigits = 18

var (
	ErrInvalidGasPrice = errors.New("invalid gas price")

	gasPriceRe = regexp.MustCompile(`^([0-9.]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
)

// GasPrice is a decimal amount of one denomination per unit of gas.
type GasPrice struct {
	Amount *big.Rat
	Denom  string
}

// ParseGasPrice parses strings such as "0.25ucosm".
func ParseGasPrice(s string) (GasPrice, error) {
	m := gasPriceRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return GasPrice{}, errors.Wrapf(ErrInvalidGasPrice, "%q", s)
	}

	amount, err := parseDecimal(m[1])
	if err != nil {
		return GasPrice{}, errors.Wrapf(ErrInvalidGasPrice, "%q: %v", s, err)
	}

	return GasPrice{Amount: amount, Denom: m[2]}, nil
}

func mustParseGasPrice(s string) GasPrice {
	gp, err := ParseGasPrice(s)
	if err != nil {
		panic(err)
	}
	return gp
}

func parseDecimal(s string) (*big.Rat, error) {
	whole, frac, hasDot := strings.Cut(s, ".")
	if strings.Contains(frac, ".") {
		return nil, errors.New("more than one separator")
	}
	if whole == "" && (!hasDot || frac == "") {
		return nil, errors.New("no digits")
	}
	if len(frac) > maxFractionalDigits {
		return nil, errors.Newf("more than %d fractional digits", maxFractionalDigits)
	}

	r, ok := new(big.Rat).SetString("0" + whole + "." + frac + "0")
	if !ok {
		return nil, errors.Newf("not a decimal: %q", s)
	}
	return r, nil
}

// String renders the price the way it was written, without trailing zeros.
func (g GasPrice) String() string {
	if g.Amount == nil {
		return "0" + g.Denom
	}
	a := g.Amount.FloatString(maxFractionalDigits)
	if strings.Contains(a, ".") {
		a = strings.TrimRight(a, "0")
		a = strings.TrimSuffix(a, ".")
	}
	return a + g.Denom
}

func (g GasPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *GasPrice) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	gp, err := ParseGasPrice(s)
	if err != nil {
		return err
	}
	*g = gp
	return nil
}

func (g GasPrice) clone() GasPrice {
	out := GasPrice{Denom: g.Denom}
	if g.Amount != nil {
		out.Amount = new(big.Rat).Set(g.Amount)
	}
	return out
}

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Fee is the standard fee descriptor attached to a transaction.
type Fee struct {
	Amount []Coin `json:"amount"`
	Gas    string `json:"gas"`
}

// CalculateFee charges ceil(price * gasLimit) in the price denomination.
func CalculateFee(gasLimit uint64, price GasPrice) Fee {
	amount := new(big.Int)
	if price.Amount != nil {
		total := new(big.Rat).Mul(price.Amount, new(big.Rat).SetInt(new(big.Int).SetUint64(gasLimit)))

		q, r := new(big.Int).QuoRem(total.Num(), total.Denom(), new(big.Int))
		if r.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
		amount = q
	}

	return Fee{
		Amount: []Coin{{Denom: price.Denom, Amount: amount.String()}},
		Gas:    strconv.FormatUint(gasLimit, 10),
	}
}
