// Package networth tracks a personal balance sheet over time.
//
// The model is a set of named financial items (assets and liabilities),
// grouped into keyword-driven categories, with dated snapshots of every
// item's balance. From that history the package derives point-in-time
// summary statistics, rolling net-worth trends, milestone progress and
// goal projections. Everything is computed from already-loaded data;
// persistence is a single JSON document per tracker.
package networth
