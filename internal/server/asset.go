package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	assetdomain "github.com/smallbiznis/gridplant/internal/asset/domain"
)

func (s *Server) ListAssets(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	status, err := parseAssetStatusQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	search, err := parseSearchQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	assets, err := s.assetSvc.List(c.Request.Context(), assetdomain.ListRequest{
		Skip:   skip,
		Limit:  limit,
		Status: status,
		Search: search,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (s *Server) CreateAsset(c *gin.Context) {
	var req assetdomain.CreateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.assetSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) GetAsset(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.assetSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateAsset(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var patch assetdomain.Patch
	if err := bindStrictJSON(c, &patch); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.assetSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteAsset(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.assetSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
