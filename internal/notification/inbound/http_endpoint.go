package inbound

import (
	"github.com/shandysiswandi/academia/internal/notification/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// @Summary List notifications
// @Description Returns the current admin's notifications, newest first.
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param size query int false "Page size (default 20)"
// @Success 200 {object} router.successResponse{data=NotificationsResponse} "Notifications"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Router /api/v1/notifications [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}
	unread, err := r.GetQueryBool("unread")
	if err != nil {
		return nil, err
	}

	in := usecase.ListInput{Page: page, Size: size}
	if unread != nil {
		in.Unread = *unread
	}

	out, err := h.uc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}

	items := make([]NotificationResponse, 0, len(out.Notifications))
	for _, n := range out.Notifications {
		items = append(items, toNotificationResponse(n))
	}

	return NotificationsResponse{Notifications: items, pageMeta: pageMeta{total: out.Total, size: out.Size, page: out.Page}}, nil
}

// @Summary Create notification
// @Description Stores a notification for recipient_id, or for the caller when it is omitted.
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body usecase.CreateInput true "Notification"
// @Success 201 {object} router.successResponse{data=NotificationResponse} "Created"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/notifications [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var in usecase.CreateInput
	if err := r.DecodeBody(&in); err != nil {
		return nil, err
	}

	n, err := h.uc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return NotificationCreateResponse{NotificationResponse: toNotificationResponse(*n)}, nil
}

// @Summary Mark notification read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} router.successResponse "Marked"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/notifications/{id}/read [patch]
func (h *HTTPEndpoint) MarkRead(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.MarkRead(r.Context(), id); err != nil {
		return nil, err
	}

	return MessageResponse{msg: "Notification marked as read"}, nil
}

// @Summary Mark all notifications read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=MarkAllReadResponse} "Marked"
// @Router /api/v1/notifications-read-all [put]
func (h *HTTPEndpoint) MarkAllRead(r *router.Request) (any, error) {
	n, err := h.uc.MarkAllRead(r.Context())
	if err != nil {
		return nil, err
	}

	return MarkAllReadResponse{Updated: n}, nil
}

// @Summary Count unread notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=UnreadCountResponse} "Count"
// @Router /api/v1/notifications-unread-count [get]
func (h *HTTPEndpoint) UnreadCount(r *router.Request) (any, error) {
	n, err := h.uc.UnreadCount(r.Context())
	if err != nil {
		return nil, err
	}

	return UnreadCountResponse{Count: n}, nil
}

// @Summary Delete notification
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} router.successResponse "Deleted"
// @Failure 404 {object} router.errorResponse "Not found"
// @Router /api/v1/notifications/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		return nil, err
	}

	return MessageResponse{msg: "Notification deleted successfully"}, nil
}
