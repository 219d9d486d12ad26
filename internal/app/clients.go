package app

import (
	"context"
	"fmt"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/neo4jdb"
)

type Clients struct {
	Neo4j *neo4jdb.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	client, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init neo4j: %w", err)
	}
	return Clients{Neo4j: client}, nil
}

func (c Clients) Close(ctx context.Context) error {
	if c.Neo4j == nil {
		return nil
	}
	return c.Neo4j.Close(ctx)
}

// OpenGraph connects to Neo4j and returns a store over that connection plus
// its closer. Used by one-shot CLI commands.
func OpenGraph(log *logger.Logger) (graph.Store, func(context.Context) error, error) {
	clients, err := wireClients(log)
	if err != nil {
		return nil, nil, err
	}
	return graph.NewCypherStore(clients.Neo4j, log), clients.Close, nil
}
