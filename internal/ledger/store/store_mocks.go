package store

//go:generate moq -pkg mocks -out ./mocks/ledger_store_mock.go . LedgerStore
//go:generate moq -pkg mocks -out ./mocks/block_writer_mock.go . BlockWriter
//go:generate moq -pkg mocks -out ./mocks/ledger_reader_mock.go . LedgerReader
