// Package farmsub extracts federal farm-subsidy totals from the subsidy
// database's region summary pages. Each page embeds one county-level map
// data fragment inside an inline script; farmsub locates that fragment,
// decodes it into typed per-county records, and reports what failed and
// why so results can be spot-checked against the source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package farmsub
