// Package dataset reads and appends tab-separated numeric datasets, the
// on-disk exchange format of the imputation pipeline (hap panels and
// imputed output).
//
// Files carry one sample per line, tab-separated, no header and no index
// column. Missing entries are written and recognized as configurable tokens
// (DefaultMissingToken and friends) and surface as NaN in memory.
//
//	x, err := dataset.ReadFile("panel.hap.gz")
//	err = dataset.AppendFile("out.hap", imputed)
//
// Compression is selected by file extension: .gz (gzip), .zst (zstd) and
// .lz4 are supported transparently for both reading and appending. Appends
// to a compressed file emit one self-contained frame per call; frames of
// all three formats concatenate into a valid stream.
package dataset
