// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// layerOverrides records the values a source set explicitly. mergo only
// fills zero fields, so a later source would otherwise beat an explicit
// false or 0 from an earlier one. A nil field means the source left it unset.
type layerOverrides struct {
	Standalone               *bool `env:"APP_STANDALONE"`
	ProductIDsLimit          *int  `env:"WORKERS_PRODUCT_IDS_LIMIT"`
	BranchProductIDsLimit    *int  `env:"WORKERS_BRANCH_PRODUCT_IDS_LIMIT"`
	BalanceUpdateLogIDsLimit *int  `env:"WORKERS_BALANCE_UPDATE_LOG_IDS_LIMIT"`
}

// fill copies every field of other that is still unset in o. Sources are
// added in precedence order, so the first explicit value wins.
func (o *layerOverrides) fill(other layerOverrides) {
	if o.Standalone == nil {
		o.Standalone = other.Standalone
	}
	if o.ProductIDsLimit == nil {
		o.ProductIDsLimit = other.ProductIDsLimit
	}
	if o.BranchProductIDsLimit == nil {
		o.BranchProductIDsLimit = other.BranchProductIDsLimit
	}
	if o.BalanceUpdateLogIDsLimit == nil {
		o.BalanceUpdateLogIDsLimit = other.BalanceUpdateLogIDsLimit
	}
}

// apply writes the explicit values over the merged config.
func (o layerOverrides) apply(cfg *StructuredConfig) {
	if o.Standalone != nil {
		cfg.App.Standalone = *o.Standalone
	}
	if o.ProductIDsLimit != nil {
		cfg.Workers.ProductIDsLimit = *o.ProductIDsLimit
	}
	if o.BranchProductIDsLimit != nil {
		cfg.Workers.BranchProductIDsLimit = *o.BranchProductIDsLimit
	}
	if o.BalanceUpdateLogIDsLimit != nil {
		cfg.Workers.BalanceUpdateLogIDsLimit = *o.BalanceUpdateLogIDsLimit
	}
}
