package repository

import (
	"jarkeeper/domain"

	"github.com/behrang/sqlbatch"
	"github.com/tonkeeper/tongo"
)

const (
	sqlJarUpsert = `
	insert into jars as j (
			address, owner, image, update_time
		)
		values (
			$1, $2, $3, now()
		)
	on conflict (address) do
		update set
			image = $3, update_time = now()
`

	sqlJarFind = `
	select
		image
	from jars
	where address = $1
`

	sqlJarDelete = `
	delete from jars
	where address = $1
`
)

// JarRepository persists the jar record as its fixed-capacity account image,
// keyed by the derived jar address.
type JarRepository struct {
	batchHandler BatchHandler
}

func NewJarRepository(db BatchHandler) *JarRepository {
	return &JarRepository{batchHandler: db}
}

func readJar(scan func(...interface{}) error) (interface{}, error) {
	var image []byte
	err := scan(&image)
	if err != nil {
		return nil, err
	}
	return domain.DecodeTipJar(image)
}

func (repo *JarRepository) Find(address tongo.AccountID) (*domain.TipJar, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlJarFind,
			Args:    []interface{}{address.ToRaw()},
			ReadOne: readJar,
		},
	})
	if err != nil {
		return nil, err
	}

	result, _ := results[0].(*domain.TipJar)
	return result, nil
}

func (repo *JarRepository) Upsert(address tongo.AccountID, jar *domain.TipJar) error {

	image, err := domain.EncodeTipJar(jar)
	if err != nil {
		return err
	}

	_, err = repo.batchHandler.Batch(&BatchOptionSerializable, []sqlbatch.Command{
		{
			Query: sqlJarUpsert,
			Args: []interface{}{
				address.ToRaw(), jar.Owner.ToRaw(), image,
			},
			Affect: 1,
		},
	})
	return err
}

func (repo *JarRepository) Delete(address tongo.AccountID) error {
	_, err := repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query:  sqlJarDelete,
			Args:   []interface{}{address.ToRaw()},
			Affect: 1,
		},
	})
	return err
}
