// Package services implements the driving ports over the driven ones.
// FactService is the single service: the cached, dictionary-like read
// surface over a fact source.
package services
