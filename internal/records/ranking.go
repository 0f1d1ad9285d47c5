package records

import (
	"sort"

	"mundebate-backend/internal/models"

	"gorm.io/gorm"
)

type RankingEntry struct {
	Country       models.Country `json:"country"`
	TotalScore    int            `json:"totalScore"`
	Interventions int            `json:"interventions"`
	AverageScore  float64        `json:"averageScore"`
}

// Ranking agrega los registros del modelo por país. A diferencia del puntaje
// congelado de cada registro, aquí el peso se vuelve a resolver con la tabla
// role_weights vigente, igual que siempre lo hizo el sistema. El ranking es
// global al modelo: no se filtra por dueño.
func Ranking(db *gorm.DB, modelID uint, organID *uint) ([]RankingEntry, error) {
	q := db.
		Select("records.*").
		Joins("JOIN model_organs mo ON mo.organ_id = records.organ_id").
		Where("mo.model_id = ?", modelID)
	if organID != nil {
		q = q.Where("records.organ_id = ?", *organID)
	}

	var recs []models.Record
	if err := q.Preload("User").Preload("Country").Find(&recs).Error; err != nil {
		return nil, err
	}

	var weights []models.RoleWeight
	if err := db.Find(&weights).Error; err != nil {
		return nil, err
	}
	weightByRole := make(map[models.UserRole]int, len(weights))
	for _, w := range weights {
		weightByRole[w.UserRole] = w.Weight
	}

	// Agrupar por nombre de país conservando el orden de aparición, para que
	// el orden entre empatados sea estable.
	index := make(map[string]int)
	entries := make([]RankingEntry, 0)

	for _, rec := range recs {
		weight, ok := weightByRole[rec.User.Role]
		if !ok {
			weight = 1
		}
		score := rec.QualityValue * weight

		i, seen := index[rec.Country.Name]
		if !seen {
			i = len(entries)
			index[rec.Country.Name] = i
			entries = append(entries, RankingEntry{Country: rec.Country})
		}
		entries[i].TotalScore += score
		entries[i].Interventions++
	}

	for i := range entries {
		if entries[i].Interventions > 0 {
			entries[i].AverageScore = float64(entries[i].TotalScore) / float64(entries[i].Interventions)
		}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].TotalScore > entries[b].TotalScore
	})

	return entries, nil
}
