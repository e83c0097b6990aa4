package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/handyman-marketplace/internal/middleware"
	"github.com/BruksfildServices01/handyman-marketplace/internal/timezone"
	ucBid "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/bid"
	ucJob "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/job"
)

// maxPhotoBytes bounds a single upload before decoding.
const maxPhotoBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type JobHandler struct {
	create   *ucJob.CreateJob
	get      *ucJob.GetJob
	accept   *ucJob.AcceptJob
	review   *ucJob.AddReview
	photo    *ucJob.AddPhoto
	listBids *ucBid.ListBids
}

func NewJobHandler(
	create *ucJob.CreateJob,
	get *ucJob.GetJob,
	accept *ucJob.AcceptJob,
	review *ucJob.AddReview,
	photo *ucJob.AddPhoto,
	listBids *ucBid.ListBids,
) *JobHandler {
	return &JobHandler{
		create:   create,
		get:      get,
		accept:   accept,
		review:   review,
		photo:    photo,
		listBids: listBids,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CategoryID   *string `json:"categoryId"`
	SubServiceID *string `json:"subServiceId"`
	CustomerID   string  `json:"customerId"`
	ScheduledAt  *string `json:"scheduledAt"`
	LocationText *string `json:"locationText"`

	SelectedSize      *string  `json:"selectedSize"`
	SelectedEquipment []string `json:"selectedEquipment"`
	SelectedAddons    []string `json:"selectedAddons"`
}

type AcceptJobRequest struct {
	ProviderID string `json:"providerId"`
}

type AddReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != nil {
		t, err := timezone.ParseScheduled(*req.ScheduledAt, timezone.DefaultTimezone)
		if err != nil {
			httperr.Respond(c, httperr.ErrBusiness("invalid_scheduled_at"), "", "")
			return
		}
		scheduledAt = &t
	}

	job, err := h.create.Execute(c.Request.Context(), ucJob.CreateJobInput{
		Title:             req.Title,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		SubServiceID:      req.SubServiceID,
		CustomerID:        req.CustomerID,
		ScheduledAt:       scheduledAt,
		LocationText:      req.LocationText,
		SelectedSize:      req.SelectedSize,
		SelectedEquipment: req.SelectedEquipment,
		SelectedAddons:    req.SelectedAddons,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_job", "Failed to create job.")
		return
	}

	httpresp.Created(c, job)
}

// ======================================================
// READ
// ======================================================

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_job", "Failed to load job.")
		return
	}
	httpresp.OK(c, job)
}

func (h *JobHandler) ListBids(c *gin.Context) {
	bids, err := h.listBids.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_bids", "Failed to list bids.")
		return
	}
	httpresp.List(c, bids)
}

// ======================================================
// ACCEPT
// ======================================================

func (h *JobHandler) Accept(c *gin.Context) {
	var req AcceptJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	job, err := h.accept.Execute(c.Request.Context(), ucJob.AcceptJobInput{
		JobID:      c.Param("id"),
		ProviderID: req.ProviderID,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_accept_job", "Failed to accept job.")
		return
	}
	httpresp.OK(c, job)
}

// ======================================================
// REVIEW
// ======================================================

func (h *JobHandler) Review(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	review, err := h.review.Execute(c.Request.Context(), ucJob.AddReviewInput{
		JobID:   c.Param("id"),
		ActorID: c.GetString(middleware.ContextUserID),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_add_review", "Failed to add review.")
		return
	}
	httpresp.Created(c, review)
}

// ======================================================
// PHOTOS
// ======================================================

// UploadPhoto expects a multipart form with the image under "photo".
func (h *JobHandler) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_image"), "", "")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_image"), "", "")
		return
	}
	defer f.Close()

	photo, err := h.photo.Execute(c.Request.Context(), ucJob.AddPhotoInput{
		JobID:   c.Param("id"),
		ActorID: c.GetString(middleware.ContextUserID),
		Image:   f,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_upload_photo", "Failed to upload photo.")
		return
	}
	httpresp.Created(c, photo)
}
