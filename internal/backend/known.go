package backend

var knownBackends = map[string]Settings{
	"devnetStargate": {
		ID:            "devnetStargate",
		NodeURLs:      []string{"http://localhost:26659"},
		Denominations: []string{"ucosm", "ustake"},
		AddressPrefix: "wasm",
		GasPrice:      mustParseGasPrice("0.25ucosm"),
	},
	"musselnet": {
		ID:            "musselnet",
		NodeURLs:      []string{"https://rpc.musselnet.cosmwasm.com"},
		Denominations: []string{"umayo", "ufrites"},
		AddressPrefix: "wasm",
		GasPrice:      mustParseGasPrice("0.25ucosm"),
	},
	"spacepussy": {
		ID:            "spacepussy",
		NodeURLs:      []string{"https://rpc.space-pussy-1.cybernode.ai"},
		Denominations: []string{"boot"},
		AddressPrefix: "bostrom",
		GasPrice:      mustParseGasPrice("0.01boot"),
		WalletChainInfo: &ChainInfo{
			RPC:           "https://rpc.space-pussy-1.cybernode.ai",
			REST:          "https://lcd.space-pussy-1.cybernode.ai",
			ChainID:       "space-pussy-1",
			ChainName:     "Space Pussy",
			StakeCurrency: bootCurrency,
			BIP44CoinType: 118,
			Bech32Config:  Bech32ConfigFromPrefix("bostrom"),
			Currencies:    []Currency{bootCurrency},
			FeeCurrencies: []Currency{bootCurrency},
			Features:      []string{"stargate", "ibc-transfer", "cosmwasm"},

			ExplorerURLToTx: "https://rebyc.cyber.page/network/bostrom/tx/{txHash}",
		},
	},
	"uninet": {
		ID:            "uninet",
		NodeURLs:      []string{"https://rpc.juno.giansalex.dev"},
		Denominations: []string{"ujunox"},
		AddressPrefix: "juno",
		GasPrice:      mustParseGasPrice("0.25ucosm"),
		WalletChainInfo: &ChainInfo{
			RPC:           "https://rpc.juno.giansalex.dev:443",
			REST:          "https://lcd.juno.giansalex.dev:443",
			ChainID:       "uni",
			ChainName:     "Juno Testnet",
			StakeCurrency: junoxCurrency,
			BIP44CoinType: 118,
			Bech32Config:  Bech32ConfigFromPrefix("juno"),
			Currencies:    []Currency{junoxCurrency},
			FeeCurrencies: []Currency{junoxCurrency},
			Features:      []string{"stargate", "ibc-transfer", "cosmwasm", "no-legacy-stdTx"},

			ExplorerURLToTx: "https://uni.junoscan.com/transactions/{txHash}",
		},
		ContractsURL: "https://graph.juno.giansalex.dev/api/rest/page",
	},
}

var (
	bootCurrency = Currency{
		CoinDenom:        "BOOT",
		CoinMinimalDenom: "BOOT",
		CoinDecimals:     0,
	}
	junoxCurrency = Currency{
		CoinDenom:        "JUNOX",
		CoinMinimalDenom: "ujunox",
		CoinDecimals:     6,
	}
)
