// Package connectmap groups cells into same-side regions (cells proven
// Cross-connected to each other) and tracks, per region, the sum of its
// cells' hints and which neighboring regions are still reachable through an
// Unknown edge. It is reconstructed each Sync from the current
// sidemap.SideMap state, grounded on the call sites of the original's
// ConnectMap in
// original_source/solver/src/step/connect_analysis.rs (conn_map.get(p),
// .coord()/.side()/.sum_of_hint()/.unknown_edge(), cell_len()) — the
// ConnectMap type's own source file did not survive extraction into
// original_source, so its internals below are reconstructed from usage
// rather than ported line for line.
package connectmap
