package instance

import (
	"SchedCheck/internal/application/service"
	"SchedCheck/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type InstanceHandler struct {
	updateInstancesService *service.UpdateInstancesService
}

func NewInstanceHandler(updateInstancesService *service.UpdateInstancesService) *InstanceHandler {
	return &InstanceHandler{
		updateInstancesService: updateInstancesService,
	}
}

// UpdateInstances is pushed by the config server whenever the recorder set
// changes.
func (h *InstanceHandler) UpdateInstances(w http.ResponseWriter, r *http.Request) {
	var instances []domain.AnalyzerInstance
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "invalid body")
		return
	}
	if err := json.Unmarshal(body, &instances); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, err.Error())
		return
	}
	h.updateInstancesService.Execute(instances)
	w.WriteHeader(200)
	fmt.Fprintf(w, "Instances Updated Successfully")
}
