package service

import "errors"

var ErrInternal = errors.New("internal server error")

// User-facing operation errors. The exact message text is part of the
// observable contract rendered by the client.
var (
	ErrSignInToComment = errors.New("Debes iniciar sesión para comentar")
	ErrSignInToLike    = errors.New("Inicia sesión para dar like")
	ErrNotAuthorized   = errors.New("No autorizado")
	ErrContentTooShort = errors.New("El comentario debe tener al menos 3 caracteres")
	ErrContentTooLong  = errors.New("El comentario no puede exceder los 500 caracteres")
	ErrLoadComments    = errors.New("No se pudieron cargar los comentarios")
	ErrPublishComment  = errors.New("No se pudo publicar el comentario.")
	ErrUpdateLike      = errors.New("Error al actualizar like")
	ErrDeleteComment   = errors.New("No se pudo eliminar el comentario")
	ErrParentGone      = errors.New("El comentario al que intentas responder ya no existe.")
)

const (
	MsgCommentPublished = "Comentario publicado"
	MsgCommentDeleted   = "Comentario eliminado"
	MsgLikeUpdated      = "Like actualizado"
)
