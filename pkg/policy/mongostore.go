package policy

import (
	"fmt"

	"github.com/PancyStudios/SentinelBotGo/pkg/database"
	"github.com/PancyStudios/SentinelBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// MongoStore persists policies as one document per guild in the
// "guild_policies" collection, through the shared DataManager. While the
// database is offline, writes are queued by the database layer and
// replayed on reconnection.
type MongoStore struct {
	dm *database.DataManager[models.GuildPolicy]
}

// NewMongoStore creates a MongoStore over the global policy DataManager.
// database.InitGlobalDataManagers must have been called first.
func NewMongoStore() (*MongoStore, error) {
	if database.GlobalPolicyDM == nil {
		return nil, fmt.Errorf("policy data manager not initialized")
	}
	return &MongoStore{dm: database.GlobalPolicyDM}, nil
}

// Load fetches every guild policy document.
func (ms *MongoStore) Load() (map[string]*models.GuildPolicy, error) {
	docs, err := ms.dm.GetAll(bson.M{})
	if err != nil {
		return nil, err
	}

	policies := make(map[string]*models.GuildPolicy, len(docs))
	for _, doc := range docs {
		doc.FillDefaults(doc.GuildID)
		policies[doc.GuildID] = doc
	}

	return policies, nil
}

// Save upserts every guild policy. Per-document upserts are atomic on the
// Mongo side, so a crash mid-save leaves other guilds' documents intact.
func (ms *MongoStore) Save(policies map[string]*models.GuildPolicy) error {
	var firstErr error
	for guildID, p := range policies {
		if err := ms.dm.Set(bson.M{"guildId": guildID}, p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
