package seed

import (
	"log"
	"net/http"

	"arone/dashboard"
	"arone/globals"
	"arone/models"
	"arone/mq"
	"arone/rdx"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
)

// RunSeed is the admin trigger. On failure the raw report so far plus the
// error message are returned; nothing already inserted is rolled back.
func RunSeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	engine := New(MongoStore{})

	report, err := engine.Run(r.Context())
	if err != nil {
		log.Printf("seeding aborted: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": report.Message(),
			"error":   err.Error(),
			"results": report.Results,
		})
		return
	}

	if err := rdx.RdxDel(dashboard.CacheKey); err != nil {
		log.Printf("dashboard cache invalidation failed: %v", err)
	}
	go mq.Emit(globals.Ctx, "collections-seeded", models.Index{EntityType: "seed", Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": report.Message(),
		"results": report.Results,
	})
}
