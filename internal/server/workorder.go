package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	workorderdomain "github.com/smallbiznis/gridplant/internal/workorder/domain"
)

func (s *Server) ListWorkOrders(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	status, err := parseWorkOrderStatusQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	priority, err := parseWorkOrderPriorityQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	assetID, err := parseAssetIDQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	workOrders, err := s.workorderSvc.List(c.Request.Context(), workorderdomain.ListRequest{
		Skip:     skip,
		Limit:    limit,
		Status:   status,
		Priority: priority,
		AssetID:  assetID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrders)
}

func (s *Server) CreateWorkOrder(c *gin.Context) {
	var req workorderdomain.CreateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	workOrder, err := s.workorderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workOrder)
}

func (s *Server) GetWorkOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	workOrder, err := s.workorderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrder)
}

func (s *Server) UpdateWorkOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var patch workorderdomain.Patch
	if err := bindStrictJSON(c, &patch); err != nil {
		AbortWithError(c, err)
		return
	}

	workOrder, err := s.workorderSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, workOrder)
}

func (s *Server) DeleteWorkOrder(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.workorderSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
