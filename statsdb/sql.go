package statsdb

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
  day string not null,
  time datetime,
  num_sizes int,
  num_per_size int,
  allow_move bool,
  states int,
  solved int,
  duration_ms int,
  cache_hit bool
)`

const insertStmt = `
INSERT INTO runs (day, time, num_sizes, num_per_size, allow_move, states, solved, duration_ms, cache_hit)
VALUES (:day, :time, :num_sizes, :num_per_size, :allow_move, :states, :solved, :duration_ms, :cache_hit)
`

const selectRecentStmt = `
SELECT day, time, num_sizes, num_per_size, allow_move, states, solved, duration_ms, cache_hit
  FROM runs
 ORDER BY time DESC
 LIMIT ?
`
