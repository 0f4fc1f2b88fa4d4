package core

// GroupRole is a member's role within a shared group.
type GroupRole string

const (
	RoleAdmin  GroupRole = "admin"
	RoleMember GroupRole = "miembro"
)

// InvitationState is the lifecycle state of a group invitation.
type InvitationState string

const (
	InvitationPending  InvitationState = "pendiente"
	InvitationAccepted InvitationState = "aceptada"
	InvitationRejected InvitationState = "rechazada"
	InvitationExpired  InvitationState = "expirada"
	InvitationRevoked  InvitationState = "revocada"
)

type Group struct {
	ID          int64  `json:"id_grupo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	CreatorID   int64  `json:"id_creador"`
	CreatedAt   string `json:"fecha_creacion"`
	UpdatedAt   string `json:"fecha_actualizacion,omitempty"`
}

type GroupMember struct {
	UserID   int64     `json:"id_usuario"`
	GroupID  int64     `json:"id_grupo,omitempty"`
	Role     GroupRole `json:"rol"`
	JoinedAt string    `json:"fecha_union"`
	Name     string    `json:"nombre"`
	Email    string    `json:"correo"`
}

// GroupDetail extends Group with the flat member/creator fields the detail
// endpoint adds.
type GroupDetail struct {
	Group
	CreatorName string        `json:"creador_nombre,omitempty"`
	MemberCount int           `json:"total_miembros,omitempty"`
	Members     []GroupMember `json:"miembros,omitempty"`
}

type NewGroup struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

type GroupPatch struct {
	Name        *string `json:"nombre,omitempty"`
	Description *string `json:"descripcion,omitempty"`
}

type Invitation struct {
	ID            int64           `json:"id_invitacion"`
	GroupID       int64           `json:"id_grupo"`
	InvitedUserID *int64          `json:"id_usuario_invitado,omitempty"`
	Token         string          `json:"token"`
	Link          string          `json:"link_invitacion,omitempty"`
	CreatedAt     string          `json:"fecha_creacion"`
	ExpiresAt     string          `json:"fecha_expiracion"`
	State         InvitationState `json:"estado"`
}

// InvitationDetail is the public token-lookup view: flat group and creator
// fields so the invited party can see what they are joining before
// authenticating.
type InvitationDetail struct {
	Invitation
	CreatorID        int64  `json:"creado_por,omitempty"`
	GroupName        string `json:"grupo_nombre,omitempty"`
	GroupDescription string `json:"grupo_descripcion,omitempty"`
	CreatorName      string `json:"creador_nombre,omitempty"`
}

// InvitationQR carries the server-rendered QR image for an invitation link.
type InvitationQR struct {
	InvitationID int64  `json:"id_invitacion"`
	QRBase64     string `json:"qr_code"`
	Link         string `json:"link_invitacion"`
}

type NewInvitation struct {
	GroupID       int64  `json:"id_grupo"`
	InvitedUserID *int64 `json:"id_usuario_invitado,omitempty"`
}
