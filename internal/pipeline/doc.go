// Package pipeline orchestrates the extraction of dump files.
//
// One Pipeline processes one dump file through an ordered list of
// steps, each receiving the accumulating ExtractReport. The central
// step is ExtractStep, which composes the dump segmenter, the page
// decoder, the wikitext filter, and the link extractor into a single
// forward pass with bounded memory: one page block is live at a time.
//
// Design decision: We use a step interface rather than direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for long-running extractions
//
// BatchProcessor runs multiple dump files concurrently with errgroup.
// Concurrency only ever spans files; within one file processing stays
// strictly sequential, so per-file output order always equals input
// order.
package pipeline
