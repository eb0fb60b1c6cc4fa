// Package algorithms implements the de Bruijn cleanup and traversal
// stages that run on a core.Graph: tip removal, bubble
// detection/removal, Hierholzer's Eulerian cycle, and genome spelling.
//
// Every stage here mutates (or reads) a *core.Graph belonging to a single
// sequential pipeline run; none of it is safe to call concurrently on
// the same Graph.
package algorithms

import "errors"

// ErrCannotAssemble indicates the graph handed to the Eulerian traversal
// is unbalanced, or a Hierholzer traversal ended with edges still
// unexhausted and no pending vertex to resume from — this means
// upstream cleanup failed to balance the graph, and is treated as a
// programmer error, not a recoverable condition.
var ErrCannotAssemble = errors.New("algorithms: graph cannot be assembled (unbalanced after cleanup)")
