package ledger

// from interface.go
//go:generate moq -pkg mocks -out ./mocks/chain_client_mock.go . ChainClient

// from interface.go
//go:generate moq -pkg mocks -out ./mocks/mq_client_mock.go . MessageQueueClient

// from interface.go
//go:generate moq -pkg mocks -out ./mocks/cycle_runner_mock.go . CycleRunner

// from interface.go
//go:generate moq -pkg mocks -out ./mocks/health_watch_server_mock.go . HealthWatchServer
