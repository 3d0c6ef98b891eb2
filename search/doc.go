// Package search provides a heuristic-guided best-first search engine for
// deterministic state-transition planning tasks.
//
// Given a Task (initial state, operators, goal test, successor function) and
// a Heuristic, the engine finds a sequence of operators from the initial
// state to a goal state. The engine is domain-agnostic: it never inspects
// states beyond equality and hashing, and all planning-domain knowledge lives
// behind the Task and Heuristic interfaces.
//
// Three node orderings are available and selected at configuration time:
//
//   - OrderAStar: plain A*, optimal with an admissible heuristic
//   - OrderWeightedAStar: weighted A*, trading optimality for speed
//   - OrderGreedy: greedy best-first, pure heuristic guidance
//
// The package-level AStar, WeightedAStar, and GreedyBestFirst functions cover
// the common cases; New and Engine.Run expose the full configuration surface
// (partial-plan seeding, relaxed-plan guidance, observability emitters,
// Prometheus metrics, and solution archiving).
package search
