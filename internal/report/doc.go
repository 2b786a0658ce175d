// Package report renders ranked frequency tables as plain-text reports.
//
// Each row is "token count cumulative-percentage", where the percentage is the
// running share of the domain total rounded to five decimals. Divider rows of
// ten dashes mark where counts fall an order of magnitude below the previous
// threshold. Artifacts produces the full report set for one scan, including
// the alphanumeric-only and mixed-token views of the n-gram domains.
package report
