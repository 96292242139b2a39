package config

// Default returns the built-in configuration: the Malaysian bank vocabulary
// the tool ships with when no config file is present. Bank order is the
// detection tie-break order.
func Default() Config {
	return Config{
		NameKeywords: []string{
			"receive from",
			"received from",
			"transfer from",
			"sender name",
			"sender",
			"payer",
			"paid by",
			"customer name",
			"customer",
			"bill to",
			"client",
			"recipient",
			"beneficiary",
			"transferred from",
			"remitter name",
			"remitter",
			"debited from",
			"originator name",
			"originator",
			"name",
			"from",
		},
		Banks: []BankProfile{
			{
				Name:     "Maybank",
				Keywords: []string{"transferred from", "sender's name", "maybank2u", "mae"},
				AppNames: []string{"Maybank2u", "MAE by Maybank2u"},
			},
			{
				Name:     "CIMB",
				Keywords: []string{"remitter", "remitter name", "cimb clicks", "cimb octo"},
				AppNames: []string{"CIMB Clicks", "CIMB Octo"},
			},
			{
				Name:     "Public Bank",
				Keywords: []string{"originator", "originator name", "pbe"},
				AppNames: []string{"PBe", "PB engage"},
			},
			{
				Name:     "Hong Leong Bank",
				Keywords: []string{"debited from", "hlb connect"},
				AppNames: []string{"HLB Connect"},
			},
			{
				Name:     "RHB",
				Keywords: []string{"from account", "sender", "rhb mobile"},
				AppNames: []string{"RHB Mobile Banking"},
			},
			{
				Name:     "AmBank",
				Keywords: []string{"from", "sender name", "ambank"},
				AppNames: []string{"AmOnline"},
			},
			{
				Name:     "Bank Islam",
				Keywords: []string{"from", "sender", "bank islam"},
				AppNames: []string{"Bank Islam GO"},
			},
		},
		ExcludedWords: []string{
			"details",
			"transaction",
			"transfer",
			"payment",
			"receipt",
			"duitnow",
			"instant",
			"online",
			"banking",
			"mobile",
			"maybank",
			"cimb",
			"public",
			"hong leong",
			"rhb",
			"ambank",
			"success",
			"successful",
			"completed",
			"pending",
			"failed",
			"processing",
			"date",
			"time",
			"amount",
			"balance",
			"reference",
			"status",
			"wallet",
			"account",
			"number",
			"total",
		},
		Settings: Settings{
			MinNameLength:   3,
			MaxNameWords:    5,
			ParallelWorkers: 3,
			DebugMode:       false,
		},
	}
}
