package routes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Les clients mobiles et web sont figés sur ces chemins : toute
// modification casse l'API publiée.
func TestPublishedPaths(t *testing.T) {
	require.Equal(t, "/auth/update-profile", AuthProfile)
	require.Equal(t, "/contrats/{id}/sortie", ContratSortie)
	require.Equal(t, "/factures-fournisseurs", Factures)
	require.Equal(t, "/factures-fournisseurs/{id}", FactureByID)
	require.Equal(t, "/factures-fournisseurs/{id}/payer", FacturePayer)
	require.Equal(t, "/depenses/{id}/payer", DepensePayer)
	require.Equal(t, "/comptabilite", Comptabilite)
}
