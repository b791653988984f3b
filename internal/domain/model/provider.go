// Package model contains domain models passed between layers.
package model

// Provider identifies an external signal source.
type Provider string

// Known providers. Adding a provider means adding a fetcher and a column in
// the scoring weight table; the candidate struct never widens.
const (
	ProviderCodeHost  Provider = "codehost"  // code-hosting platform
	ProviderQA        Provider = "qa"        // Q&A reputation site
	ProviderNetwork   Provider = "network"   // professional network
	ProviderMicroblog Provider = "microblog" // microblogging platform
	ProviderForum     Provider = "forum"     // community forums
)

// AllProviders returns the canonical ordered provider set.
func AllProviders() []Provider {
	return []Provider{
		ProviderCodeHost,
		ProviderQA,
		ProviderNetwork,
		ProviderMicroblog,
		ProviderForum,
	}
}

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderCodeHost, ProviderQA, ProviderNetwork, ProviderMicroblog, ProviderForum:
		return true
	}
	return false
}
