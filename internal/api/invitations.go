package api

import (
	"context"
	"fmt"
	"net/http"

	"monedero/internal/core"
)

// CreateInvitation issues a new invitation token for a group.
func (c *Client) CreateInvitation(ctx context.Context, in core.NewInvitation) (core.Invitation, error) {
	var out core.Invitation
	if err := c.sendJSON(ctx, http.MethodPost, "api/invitations/", in, &out, true); err != nil {
		return core.Invitation{}, err
	}
	return out, nil
}

// GroupInvitations lists the invitations issued for a group.
func (c *Client) GroupInvitations(ctx context.Context, groupID int64) ([]core.Invitation, error) {
	var out []core.Invitation
	if err := c.getJSON(ctx, fmt.Sprintf("api/invitations/group/%d", groupID), nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InvitationByToken resolves an invitation token to its detail view. The
// endpoint is public so an invited party can inspect it before logging in.
func (c *Client) InvitationByToken(ctx context.Context, token string) (core.InvitationDetail, error) {
	var out core.InvitationDetail
	if err := c.getJSON(ctx, "api/invitations/token/"+token, nil, false, &out); err != nil {
		return core.InvitationDetail{}, err
	}
	return out, nil
}

// InvitationQR fetches the server-rendered QR code for an invitation.
func (c *Client) InvitationQR(ctx context.Context, invitationID int64) (core.InvitationQR, error) {
	var out core.InvitationQR
	if err := c.getJSON(ctx, fmt.Sprintf("api/invitations/%d/qr", invitationID), nil, true, &out); err != nil {
		return core.InvitationQR{}, err
	}
	return out, nil
}

// acceptRejectPayload carries the token being accepted or rejected.
type acceptRejectPayload struct {
	Token string `json:"token"`
}

// AcceptInvitation accepts an invitation token on behalf of the caller.
func (c *Client) AcceptInvitation(ctx context.Context, token string) (core.Invitation, error) {
	var out core.Invitation
	err := c.sendJSON(ctx, http.MethodPost, "api/invitations/accept", acceptRejectPayload{Token: token}, &out, true)
	if err != nil {
		return core.Invitation{}, err
	}
	return out, nil
}

// RejectInvitation declines an invitation token on behalf of the caller.
func (c *Client) RejectInvitation(ctx context.Context, token string) (core.Invitation, error) {
	var out core.Invitation
	err := c.sendJSON(ctx, http.MethodPost, "api/invitations/reject", acceptRejectPayload{Token: token}, &out, true)
	if err != nil {
		return core.Invitation{}, err
	}
	return out, nil
}

// RevokeInvitation revokes a pending invitation.
func (c *Client) RevokeInvitation(ctx context.Context, invitationID int64) error {
	return c.delete(ctx, fmt.Sprintf("api/invitations/%d", invitationID))
}
