// Package cli is the policydesk operator command line.
//
// Commands run once when given as arguments ("cli show 42") or repeatedly
// from an interactive prompt when no command is given:
//
//	list                                   partners with policy totals
//	show <id>                              one partner and its policies
//	add-policy <partnerId> <number> <amt>  attach a policy to a partner
//	ping                                   check the server is reachable
//
// Highlighted partners are marked with "*" in the list output.
package cli
