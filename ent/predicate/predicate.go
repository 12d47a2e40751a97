// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// SalesMetric is the predicate function for salesmetric builders.
type SalesMetric func(*sql.Selector)

// ScrapingQueue is the predicate function for scrapingqueue builders.
type ScrapingQueue func(*sql.Selector)
