package backend

// Settings describes one network target. Values handed out by Select are
// copies; the known table is never mutated.
type Settings struct {
	ID            string   `json:"id"`
	NodeURLs      []string `json:"nodeUrls"`
	Denominations []string `json:"denominations"`
	AddressPrefix string   `json:"addressPrefix"`
	GasPrice      GasPrice `json:"gasPrice"`

	// Optional wallet-integration metadata.
	WalletChainInfo *ChainInfo `json:"walletChainInfo,omitempty"`

	// Optional external contract-index URL.
	ContractsURL string `json:"contractsUrl,omitempty"`
}

type ChainInfo struct {
	RPC             string       `json:"rpc"`
	REST            string       `json:"rest"`
	ChainID         string       `json:"chainId"`
	ChainName       string       `json:"chainName"`
	StakeCurrency   Currency     `json:"stakeCurrency"`
	BIP44CoinType   uint32       `json:"bip44CoinType"`
	Bech32Config    Bech32Config `json:"bech32Config"`
	Currencies      []Currency   `json:"currencies"`
	FeeCurrencies   []Currency   `json:"feeCurrencies"`
	Features        []string     `json:"features"`
	ExplorerURLToTx string       `json:"explorerUrlToTx,omitempty"`
}

type Currency struct {
	CoinDenom        string `json:"coinDenom"`
	CoinMinimalDenom string `json:"coinMinimalDenom"`
	CoinDecimals     uint8  `json:"coinDecimals"`
}

type Bech32Config struct {
	AccAddr  string `json:"bech32PrefixAccAddr"`
	AccPub   string `json:"bech32PrefixAccPub"`
	ValAddr  string `json:"bech32PrefixValAddr"`
	ValPub   string `json:"bech32PrefixValPub"`
	ConsAddr string `json:"bech32PrefixConsAddr"`
	ConsPub  string `json:"bech32PrefixConsPub"`
}

// Bech32ConfigFromPrefix derives the standard cosmos-sdk prefix set.
func Bech32ConfigFromPrefix(p string) Bech32Config {
	return Bech32Config{
		AccAddr:  p,
		AccPub:   p + "pub",
		ValAddr:  p + "valoper",
		ValPub:   p + "valoperpub",
		ConsAddr: p + "valcons",
		ConsPub:  p + "valconspub",
	}
}

// PrimaryNodeURL returns the first configured RPC endpoint.
func (s *Settings) PrimaryNodeURL() string {
	return s.NodeURLs[0]
}

// ChainID returns the wallet chain id, or "" when no chain info is attached.
func (s *Settings) ChainID() string {
	if s.WalletChainInfo == nil {
		return ""
	}
	return s.WalletChainInfo.ChainID
}

// ExplorerTxTemplate returns the explorer URL template, if any.
func (s *Settings) ExplorerTxTemplate() string {
	if s.WalletChainInfo == nil {
		return ""
	}
	return s.WalletChainInfo.ExplorerURLToTx
}

func (s Settings) clone() *Settings {
	out := s
	out.NodeURLs = append([]string(nil), s.NodeURLs...)
	out.Denominations = append([]string(nil), s.Denominations...)
	out.GasPrice = s.GasPrice.clone()
	if s.WalletChainInfo != nil {
		ci := *s.WalletChainInfo
		ci.Currencies = append([]Currency(nil), ci.Currencies...)
		ci.FeeCurrencies = append([]Currency(nil), ci.FeeCurrencies...)
		ci.Features = append([]string(nil), ci.Features...)
		out.WalletChainInfo = &ci
	}
	return &out
}
