package routes

// Route paths, grouped by resource. The sub-resource reads
// (/biens/villes etc.) predate the flat aliases and both survive.
const (
	Health = "/health"

	// Auth
	AuthRegister = "/auth/register"
	AuthLogin    = "/auth/login"
	AuthMe       = "/auth/me"
	AuthProfile  = "/auth/update-profile"

	// Biens (building hierarchy)
	Biens            = "/biens"
	BienByID         = "/biens/{id}"
	BienVilles       = "/biens/villes"
	BienEtages       = "/biens/etages"
	BienAppartements = "/biens/appartements"

	Etages     = "/etages"
	EtageByID  = "/etages/{id}"
	Apparts    = "/appartements"
	AppartByID = "/appartements/{id}"

	// Locataires
	Locataires     = "/locataires"
	LocataireByID  = "/locataires/{id}"

	// Contrats
	Contrats      = "/contrats"
	ContratByID   = "/contrats/{id}"
	ContratSortie = "/contrats/{id}/sortie"

	// Paiements
	Paiements        = "/paiements"
	PaiementByID     = "/paiements/{id}"
	PaiementsImpayes = "/paiements/impayes"
	PaiementsStats   = "/paiements/stats"

	// Fournisseurs et finances
	Fournisseurs     = "/fournisseurs"
	FournisseurByID  = "/fournisseurs/{id}"
	Factures         = "/factures-fournisseurs"
	FactureByID      = "/factures-fournisseurs/{id}"
	FacturePayer     = "/factures-fournisseurs/{id}/payer"
	Depenses         = "/depenses"
	DepenseByID      = "/depenses/{id}"
	DepensePayer     = "/depenses/{id}/payer"
	Comptabilite     = "/comptabilite"

	// Static uploads (avatars)
	Uploads = "/uploads/"
)
