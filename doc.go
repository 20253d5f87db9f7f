// Package supply records the purchases and sales of a small shop and keeps
// what derives from them.
//
// The core is made of:
//   - Record logs: append-only, "|" delimited files of purchases (bought.csv)
//     and sales (sold.csv). Each log allocates its own increasing IDs.
//   - Inventory projection: the current stock per product, persisted as a
//     table (inventory.csv) and mirrored as a JSON object (inventory.json).
//   - Running totals: the total cost and the total revenue, one plain text
//     number per file, updated on every transaction.
//   - Date range queries: cost, revenue and profit computed from the record
//     logs for a day or an inclusive range of days.
//
// The record logs are the source of truth. The inventory and the running
// totals are caches that [Store.Check] compares to a replay of the logs and
// that [Store.Recompute] rebuilds.
//
// This package serves as the foundational logic for the `sup` command-line
// tool. One invocation performs one transaction or one query.
package supply
