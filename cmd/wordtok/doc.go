/*
Command wordtok is the demonstration driver for the tokenizer library.

Subcommands:

	wordtok demo                      walk through the sample sentences
	wordtok demo --config cfg.yaml    with samples/toggles from a config file
	wordtok files <path>...           tokenize files and report statistics
	wordtok version                   print build information

demo prints, for each configured sentence, the token sequence, the
reconstructed text, whether it matches the original byte for byte, an
optional per-token WORD/PUNCTUATION breakdown, and aggregate statistics.

files reads every named file concurrently, tokenizes its contents, and
logs per-file token statistics.
*/
package main
