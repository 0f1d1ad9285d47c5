package records

import (
	"testing"

	"mundebate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingSumsAndAverages(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	// Francia: supervisor 4*2=8 y mesa 4*1=4 => total 12, promedio 6.
	_, err := Create(db, createInput(f, f.supervisor, f.buena, f.francia))
	require.NoError(t, err)
	_, err = Create(db, createInput(f, f.mesa, f.buena, f.francia))
	require.NoError(t, err)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	require.Len(t, ranking, 1)

	assert.Equal(t, "Francia", ranking[0].Country.Name)
	assert.Equal(t, 12, ranking[0].TotalScore)
	assert.Equal(t, 2, ranking[0].Interventions)
	assert.InDelta(t, 6.0, ranking[0].AverageScore, 0.0001)
}

func TestRankingSortedByTotalDescending(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	// China: 5*2=10, Francia: 4*1=4
	_, err := Create(db, createInput(f, f.mesa, f.buena, f.francia))
	require.NoError(t, err)
	_, err = Create(db, createInput(f, f.supervisor, f.excelente, f.china))
	require.NoError(t, err)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "China", ranking[0].Country.Name)
	assert.Equal(t, "Francia", ranking[1].Country.Name)
}

func TestRankingUsesLiveWeights(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	rec, err := Create(db, createInput(f, f.supervisor, f.buena, f.francia))
	require.NoError(t, err)
	require.Equal(t, 8, rec.FinalScore)

	// El ranking se recalcula con el peso vigente, el registro queda congelado.
	require.NoError(t, db.Model(&models.RoleWeight{}).
		Where("user_role = ?", models.RoleSupervisor).
		Update("weight", 3).Error)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 12, ranking[0].TotalScore)

	var stored models.Record
	require.NoError(t, db.First(&stored, rec.ID).Error)
	assert.Equal(t, 8, stored.FinalScore)
}

func TestRankingDefaultsWeightWithoutRow(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	_, err := Create(db, createInput(f, f.supervisor, f.buena, f.francia))
	require.NoError(t, err)

	require.NoError(t, db.Where("user_role = ?", models.RoleSupervisor).
		Delete(&models.RoleWeight{}).Error)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 4, ranking[0].TotalScore)
}

func TestRankingIgnoresOwnership(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	// Registros de dos autores distintos cuentan juntos: el ranking es del
	// modelo, no de quien pregunta.
	_, err := Create(db, createInput(f, f.mesa, f.buena, f.francia))
	require.NoError(t, err)
	_, err = Create(db, createInput(f, f.supervisor, f.buena, f.francia))
	require.NoError(t, err)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 2, ranking[0].Interventions)
}

func TestRankingFiltersByOrgan(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	otherOrgan := models.Organ{Name: "Asamblea General"}
	require.NoError(t, db.Create(&otherOrgan).Error)
	require.NoError(t, db.Create(&models.ModelOrgan{ModelID: f.model.ID, OrganID: otherOrgan.ID}).Error)

	_, err := Create(db, createInput(f, f.mesa, f.buena, f.francia))
	require.NoError(t, err)

	inOther := createInput(f, f.mesa, f.excelente, f.china)
	inOther.OrganID = otherOrgan.ID
	_, err = Create(db, inOther)
	require.NoError(t, err)

	ranking, err := Ranking(db, f.model.ID, &otherOrgan.ID)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "China", ranking[0].Country.Name)
}

func TestRankingEmptyModel(t *testing.T) {
	db := setupDB(t)
	f := seedFixture(t, db)

	ranking, err := Ranking(db, f.model.ID, nil)
	require.NoError(t, err)
	assert.NotNil(t, ranking)
	assert.Len(t, ranking, 0)
}
