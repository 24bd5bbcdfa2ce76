package gitea

import (
	"time"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
)

func HTTPTimeout(m interfaces.RepositoryMigrator) time.Duration {
	return m.(*client).http.Timeout
}
