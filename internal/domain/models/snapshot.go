// Package models defines the bookkeeping entities, the calendar Date type,
// and the whole-state snapshot the record store persists and the derivation
// services read.
package models

import "github.com/shopspring/decimal"

func init() {
	// Backups written by earlier versions of the app store plain JSON
	// numbers, so decimals must not be quoted on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the full application state: the seven entity collections, each
// in insertion order. It is the unit of load, flush, export and import.
type Snapshot struct {
	Animals         []Animal          `json:"animals"`
	MilkEntries     []MilkEntry       `json:"milkEntries"`
	FeedPurchases   []FeedPurchase    `json:"feedPurchases"`
	FeedConsumption []FeedConsumption `json:"feedConsumption"`
	HealthEvents    []HealthEvent     `json:"healthEvents"`
	Customers       []Customer        `json:"customers"`
	Sales           []Sale            `json:"sales"`
}

// EmptySnapshot returns a valid snapshot with all collections present but
// empty. Used when no prior state exists or the stored state cannot be read.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Animals:         []Animal{},
		MilkEntries:     []MilkEntry{},
		FeedPurchases:   []FeedPurchase{},
		FeedConsumption: []FeedConsumption{},
		HealthEvents:    []HealthEvent{},
		Customers:       []Customer{},
		Sales:           []Sale{},
	}
}

// Clone returns a deep copy of the snapshot so derivation callers can hold a
// stable view while the store keeps mutating.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Animals:         make([]Animal, len(s.Animals)),
		MilkEntries:     make([]MilkEntry, len(s.MilkEntries)),
		FeedPurchases:   make([]FeedPurchase, len(s.FeedPurchases)),
		FeedConsumption: make([]FeedConsumption, len(s.FeedConsumption)),
		HealthEvents:    make([]HealthEvent, len(s.HealthEvents)),
		Customers:       make([]Customer, len(s.Customers)),
		Sales:           make([]Sale, len(s.Sales)),
	}
	copy(out.Animals, s.Animals)
	copy(out.MilkEntries, s.MilkEntries)
	copy(out.FeedPurchases, s.FeedPurchases)
	copy(out.FeedConsumption, s.FeedConsumption)
	copy(out.HealthEvents, s.HealthEvents)
	copy(out.Customers, s.Customers)
	copy(out.Sales, s.Sales)
	return out
}
