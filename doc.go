// Package ffdb reads, transforms, and writes ffindex databases: a storage
// convention pairing one data file (a contiguous byte blob) with one index
// file (a text manifest of named byte ranges into that blob).
//
// A database is the pairing of an [Index] with its data bytes. Every [Entry]
// names a byte range [Start, Start+Size) that must exist inside the data
// file. Operations never mutate inputs in place: each produces a freshly
// written output pair, with offsets recomputed so the invariant holds.
//
// # Index format
//
// The index file is plain text, one line per entry, three tab-separated
// fields and a terminating newline:
//
//	name\toffset\tlength\n
//
// The data file has no structure of its own; documents are addressed only
// through index entries. By convention each document ends with a single
// null byte that is not counted as content in textual uses ([Collect]
// strips it).
//
// # Operations
//
// [Split] partitions a database into fixed-size chunks, [Combine]
// concatenates databases byte-exact, [FromFasta] builds a database from a
// FASTA stream, [Collect] flattens databases into one byte stream,
// [JoinConcat] performs a full outer join of documents by name, [Select]
// filters entries by name, and [Reorder] rewrites a database in a new
// entry order.
//
// All output pairs are written through [SaveDB], which promotes the data
// file before the index file so a failure never leaves an index referencing
// an incomplete data file.
package ffdb
